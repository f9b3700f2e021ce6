// Package cmd implements the CLI application to explore a personal finance
// dataset.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/finsight/finsight"
	"github.com/google/subcommands"
)

// Environment variables overriding the global flag defaults. Useful to set
// the dataset once for a whole session.
const (
	EnvDataFile = "PFD_DATA_FILE"
	EnvCurrency = "PFD_CURRENCY"
	EnvPlain    = "PFD_PLAIN"
)

// Commands lists every subcommand. A main package registers them on a
// Commander and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&overviewCmd{},
	&transactionsCmd{},
	&cashflowCmd{},
	&portfolioCmd{},
	&networthCmd{},
	&goalsCmd{},
	&sampleCmd{},
	&publishCmd{},
	&topicCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for the global flags.

var dataFile = flag.String("data", envOr(EnvDataFile, "data.zip"), "Dataset to report on: a ZIP archive, a directory of CSV files, or a transactions CSV.")
var currency = flag.String("currency", envOr(EnvCurrency, finsight.DefaultCurrency), "Reporting currency code.")
var plain = flag.Bool("plain", os.Getenv(EnvPlain) != "", "Print raw markdown instead of rendering for the terminal.")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadDataset reads the dataset named by the global -data flag and runs the
// keyword classifier over its transactions, leaving hand-set categories
// untouched.
func loadDataset() (*finsight.Dataset, error) {
	finsight.DefaultCurrency = *currency
	ds, err := finsight.LoadDataset(*dataFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load dataset %q: %w", *dataFile, err)
	}
	ds.Transactions = finsight.NewClassifier(finsight.DefaultRules()).ClassifyAll(ds.Transactions)
	return ds, nil
}

// printMarkdown renders a markdown report to the terminal, falling back to
// the raw markdown when rendering is off or fails.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
