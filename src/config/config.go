package config

import (
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/sampctl/configor"

	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/fs"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/print"
)

// Config represents a local configuration for lucid-scaffold. It only affects console
// output, never what is scaffolded.
type Config struct {
	Summary *bool `json:"summary,omitempty" yaml:"summary,omitempty" env:"LUCID_SUMMARY"` // always print the summary table
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	summary := false
	return Config{
		Summary: &summary,
	}
}

// ShowSummary reports whether the summary table is enabled.
func (c Config) ShowSummary() bool {
	return c.Summary != nil && *c.Summary
}

// LoadConfig reads a config file from the given config directory. A missing directory or
// file is not an error and nothing is written: the defaults are returned instead.
func LoadConfig(configDir string, verbose bool) (cfg *Config, err error) {
	cfg = new(Config)

	err = godotenv.Load(".env")
	// on unix: "open .env: no such file or directory"
	// on windows: "open .env: The system cannot find the file specified"
	if err != nil && !strings.HasPrefix(err.Error(), "open .env") {
		print.Warn("Failed to load .env:", err)
	}

	afs := fs.NewOsFs()
	configFiles := []string{
		filepath.Join(configDir, "config.yaml"),
		filepath.Join(configDir, "config.json"),
	}
	configFile := ""
	for _, file := range configFiles {
		if fs.Exists(afs, file) {
			configFile = file
			break
		}
	}

	if configFile != "" {
		cnfgr := configor.New(&configor.Config{
			EnvironmentPrefix:    "LUCID",
			ErrorOnUnmatchedKeys: false,
		})
		err = cnfgr.Load(cfg, configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", configFile)
		}
	} else {
		print.Verb("No configuration file found, using default configuration")
	}

	err = mergo.Merge(cfg, Default())
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply default configuration")
	}

	if verbose {
		print.Verb("Using configuration:", pretty.Sprint(cfg))
	}

	return cfg, nil
}
