// Command dtk tracks a small currency trading business: dollar buys and
// sells, cash deposits and expenses, and the profit they produce.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/dollartracker/cmd"
)

func main() {
	// Shell completion support. Complete returns immediately when the
	// process is not running as a completer.
	cmp := &complete.Command{
		Flags: map[string]complete.Predictor{"config": predict.Files("*.yaml")},
		Sub:   map[string]*complete.Command{},
	}
	for _, c := range cmd.Commands {
		cmp.Sub[c.Name()] = &complete.Command{}
	}
	cmp.Complete("dtk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
