package commands

import (
	"gopkg.in/urfave/cli.v1"

	"github.com/lucid-engine/lucid-scaffold/src/config"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/fs"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/scaffold/layout"
)

type commandEnv struct {
	Dir     string
	Name    string
	DryRun  bool
	Verbose bool
	Summary bool
}

func getCommandEnv(c *cli.Context, cfg *config.Config) (commandEnv, error) {
	env := commandEnv{
		DryRun:  c.Bool("dry-run"),
		Verbose: c.Bool("verbose"),
		Name:    layout.DefaultProjectName,
	}

	if cfg != nil {
		env.Summary = cfg.ShowSummary()
	}
	if c.NArg() > 0 {
		env.Name = c.Args().First()
	}

	dir, err := fs.Abs(c.String("dir"))
	if err != nil {
		return commandEnv{}, err
	}
	env.Dir = dir

	return env, nil
}
