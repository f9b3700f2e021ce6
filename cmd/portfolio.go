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

type portfolioCmd struct {
	pricesFile string
	pricesPath string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "value the investment holdings" }
func (*portfolioCmd) Usage() string {
	return `pfd portfolio [-prices <file>] [-path <jsonpath>]

  Values each holding against current prices and reports gains and losses.
  Prices come from the built-in table unless -prices names a JSON price
  file; -path selects the quotes inside a provider envelope, e.g.:

  $ pfd portfolio -prices quotes.json -path '$.data.quotes'
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pricesFile, "prices", "", "JSON price file overriding the built-in price table.")
	f.StringVar(&c.pricesPath, "path", "$", "jsonpath expression selecting the quotes in the price file.")
}

// prices returns the price table to value against, reading the price file
// when one was given.
func (c *portfolioCmd) prices() (finsight.PriceTable, error) {
	if c.pricesFile == "" {
		return finsight.DefaultPrices(), nil
	}
	f, err := os.Open(c.pricesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return finsight.DecodePrices(f, c.pricesPath)
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prices, err := c.prices()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ds, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := finsight.NewPortfolioReport(ds.Holdings, prices)
	printMarkdown(renderer.PortfolioMarkdown(report))
	return subcommands.ExitSuccess
}
