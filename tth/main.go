package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/focusos/thrifthunter/cmd"
)

func main() {
	// Shell completion runs first and exits when invoked by the shell.
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"dashboard": {},
			"scan":      {},
			"sold":      {},
			"stock":     {},
			"goals":     {},
			"watch":     {},
			"deals":     {},
			"title":     {},
			"describe":  {},
			"offer":     {},
			"bulk":      {},
			"sizes":     {},
			"activate":  {},
			"vault":     {},
			"tax":       {},
			"settings":  {},
			"region":    {},
			"reset":     {},
			"serve":     {},
			"help":      {},
			"flags":     {},
			"commands":  {},
		},
		Flags: map[string]complete.Predictor{
			"state-file": predict.Files("*.json"),
		},
	}
	completer.Complete("tth")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
