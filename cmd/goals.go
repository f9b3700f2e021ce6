package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/renderer"
	"github.com/google/subcommands"
)

type goalsCmd struct {
	date string
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "project progress towards the financial goals" }
func (*goalsCmd) Usage() string {
	return `pfd goals [-d <date>]

  Displays each goal's progress, days remaining and the monthly savings
  required to reach it by its target date.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finsight.Today().String(), "Date to project from.")
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := finsight.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ds, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := finsight.NewGoalsReport(ds.Goals, asOf)
	printMarkdown(renderer.GoalsMarkdown(report))
	return subcommands.ExitSuccess
}
