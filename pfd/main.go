package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finsight/finsight/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion for subcommand names and the global flags. Complete()
	// handles the completion request and exits when one is in flight.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"data":     predict.Files("*"),
			"currency": predict.Nothing,
			"plain":    predict.Nothing,
		},
	}
	for _, c := range cmd.Commands {
		completion.Sub[c.Name()] = &complete.Command{}
	}
	completion.Complete("pfd")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
