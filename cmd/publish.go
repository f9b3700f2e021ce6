package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/renderer"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type publishCmd struct {
	outputDir string
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "write every report as markdown and HTML" }
func (*publishCmd) Usage() string {
	return `pfd publish [-o <dir>]

  Generates every report for the dataset and saves each one to the output
  directory, both as markdown and as a standalone HTML page.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
}

const htmlPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
%s</body>
</html>
`

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	ds, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	today := finsight.Today()
	reports := []struct {
		name, content string
	}{
		{"overview", renderer.OverviewMarkdown(finsight.NewOverview(ds, today))},
		{"transactions", renderer.TransactionsMarkdown(ds.Transactions)},
		{"cashflow", renderer.CashflowMarkdown(finsight.MonthlySummary(ds.Transactions), finsight.ExpenseByCategory(ds.Transactions))},
		{"portfolio", renderer.PortfolioMarkdown(finsight.NewPortfolioReport(ds.Holdings, finsight.DefaultPrices()))},
		{"networth", renderer.NetWorthMarkdown(finsight.NewNetWorthReport(ds.NetWorth))},
		{"goals", renderer.GoalsMarkdown(finsight.NewGoalsReport(ds.Goals, today))},
	}

	engine := goldmark.New(goldmark.WithExtensions(extension.GFM))
	for _, report := range reports {
		mdPath := filepath.Join(c.outputDir, report.name+".md")
		if err := os.WriteFile(mdPath, []byte(report.content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %q: %v\n", mdPath, err)
			return subcommands.ExitFailure
		}

		var body bytes.Buffer
		if err := engine.Convert([]byte(report.content), &body); err != nil {
			fmt.Fprintf(os.Stderr, "failed to convert %q to HTML: %v\n", report.name, err)
			return subcommands.ExitFailure
		}
		htmlPath := filepath.Join(c.outputDir, report.name+".html")
		page := fmt.Sprintf(htmlPage, report.name, body.String())
		if err := os.WriteFile(htmlPath, []byte(page), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %q: %v\n", htmlPath, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Published %d reports to %s\n", len(reports), c.outputDir)
	return subcommands.ExitSuccess
}
