package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/renderer"
	"github.com/google/subcommands"
)

type transactionsCmd struct {
	categories string
	types      string
	min        string
	max        string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list and filter categorized transactions" }
func (*transactionsCmd) Usage() string {
	return `pfd transactions [-category <list>] [-type income|expense] [-min <amount>] [-max <amount>]

  Lists the dataset's transactions after categorization, most recent first.
  Filters combine, e.g.:

  $ pfd transactions -category grocery,dining -min -200
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.categories, "category", "", "Comma-separated categories to keep.")
	f.StringVar(&c.types, "type", "", "Comma-separated transaction types to keep (income, expense).")
	f.StringVar(&c.min, "min", "", "Keep transactions with a signed amount at or above this value.")
	f.StringVar(&c.max, "max", "", "Keep transactions with a signed amount at or below this value.")
}

// filter builds the TransactionFilter out of the flag values.
func (c *transactionsCmd) filter() (finsight.TransactionFilter, error) {
	var filter finsight.TransactionFilter
	if c.categories != "" {
		for _, cat := range strings.Split(c.categories, ",") {
			filter.Categories = append(filter.Categories, strings.TrimSpace(cat))
		}
	}
	if c.types != "" {
		for _, t := range strings.Split(c.types, ",") {
			typ, err := finsight.ParseTransactionType(strings.TrimSpace(t))
			if err != nil {
				return filter, err
			}
			filter.Types = append(filter.Types, typ)
		}
	}
	if c.min != "" {
		m, err := finsight.ParseMoney(c.min)
		if err != nil {
			return filter, fmt.Errorf("invalid -min: %w", err)
		}
		filter.Min = &m
	}
	if c.max != "" {
		m, err := finsight.ParseMoney(c.max)
		if err != nil {
			return filter, fmt.Errorf("invalid -max: %w", err)
		}
		filter.Max = &m
	}
	return filter, nil
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ds, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	txs := finsight.FilterTransactions(ds.Transactions, filter)
	printMarkdown(renderer.TransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}
