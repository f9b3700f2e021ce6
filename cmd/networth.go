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

type networthCmd struct{}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "display the net worth history and trend" }
func (*networthCmd) Usage() string {
	return `pfd networth

  Displays the net worth snapshots with the latest change and the average
  monthly growth rate.
`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := finsight.NewNetWorthReport(ds.NetWorth)
	printMarkdown(renderer.NetWorthMarkdown(report))
	return subcommands.ExitSuccess
}
