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

type overviewCmd struct {
	date string
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the monthly headline figures" }
func (*overviewCmd) Usage() string {
	return `pfd overview [-d <date>]

  Displays the month's income, expenses and net cash flow, plus the latest
  known net worth.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finsight.Today().String(), "Date whose month to summarize.")
}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := finsight.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ds, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OverviewMarkdown(finsight.NewOverview(ds, on)))
	return subcommands.ExitSuccess
}
