package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/fs"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/print"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/scaffold"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/scaffold/layout"
)

func scaffoldProject(c *cli.Context) error {
	env, err := getCommandEnv(c, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to resolve target directory")
	}

	if c.NArg() > 1 {
		print.Warn("Only the first argument is used as the project name, ignoring", c.Args().Tail())
	}

	afs := fs.NewOsFs()
	if env.DryRun {
		afs = fs.NewDryRunFs(afs)
	}

	result, err := scaffold.Scaffold(afs, env.Dir, env.Name)
	if err != nil {
		return err
	}

	if env.DryRun {
		print.Info("Dry run, nothing was written. Would create:")
		for _, e := range result.Report.Created {
			print.Line(fmt.Sprintf("  %-4s %s", e.Kind, fs.Rel(env.Dir, e.Path)))
		}
	} else {
		print.Line(fmt.Sprintf("Scaffolded Lucid Engine in %s 🚀", result.Root))
		print.Line(layout.SuccessHint)
	}

	if env.DryRun || env.Verbose || env.Summary {
		rows := append(result.Report.Rows(), []interface{}{"files rewritten", len(result.Overwritten)})
		print.Table([]interface{}{"Entry", "Count"}, rows)
	}

	return nil
}
