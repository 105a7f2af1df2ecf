package main

import (
	"os"

	"github.com/lucid-engine/lucid-scaffold/src/commands"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/print"
)

var (
	version = "master"
)

func main() {
	if err := commands.Run(os.Args, version); err != nil {
		print.Erro(err)
		os.Exit(1)
	}
}
