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

type cashflowCmd struct{}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display the monthly income and expense breakdown" }
func (*cashflowCmd) Usage() string {
	return `pfd cashflow

  Displays income, expenses and net cash flow per month, the monthly
  averages and savings rate, and spending by category.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	buckets := finsight.MonthlySummary(ds.Transactions)
	byCategory := finsight.ExpenseByCategory(ds.Transactions)
	printMarkdown(renderer.CashflowMarkdown(buckets, byCategory))
	return subcommands.ExitSuccess
}
