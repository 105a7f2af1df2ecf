package commands

import (
	"runtime"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/lucid-engine/lucid-scaffold/src/config"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/fs"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/print"
)

var cfg *config.Config // global config, nil in bare mode

func Run(args []string, version string) error {
	cfg = nil

	app := cli.NewApp()

	app.Name = "lucid-scaffold"
	app.Usage = "Scaffolds the Lucid Engine project layout."
	app.ArgsUsage = "[project name]"
	app.Version = version

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "dir",
			Value: ".",
			Usage: "parent directory the project is created in - by default, uses the current directory",
		},
		cli.BoolFlag{
			Name:  "dry-run",
			Usage: "list what would be created without touching the disk",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "output all detailed information - useful for debugging",
		},
		cli.BoolFlag{
			Name:  "bare",
			Usage: "skip .env and configuration file loading",
		},
	}

	app.Before = func(c *cli.Context) error {
		verbose := c.Bool("verbose")
		if verbose {
			print.SetVerbose()
			print.Verb("Verbose logging active")
		}
		if runtime.GOOS != "windows" {
			print.SetColoured()
		}

		// "bare" mode runs with built-in defaults only
		if c.Bool("bare") {
			return nil
		}

		if err := godotenv.Load(".env"); err != nil {
			print.Verb(err)
		}

		configDir := fs.ConfigDir()
		var err error
		cfg, err = config.LoadConfig(configDir, verbose)
		if err != nil {
			return errors.Wrapf(err, "failed to load lucid-scaffold config in %s", configDir)
		}
		return nil
	}
	app.Action = scaffoldProject
	app.OnUsageError = func(c *cli.Context, err error, isSubcommand bool) error {
		return err
	}

	return app.Run(args)
}
