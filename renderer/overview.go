package renderer

import (
	"bytes"
	"fmt"

	"github.com/finsight/finsight"
	md "github.com/nao1215/markdown"
)

// OverviewMarkdown renders the dashboard headline figures for one month.
func OverviewMarkdown(o *finsight.Overview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Financial Overview for %s", o.Month))

	rows := [][]string{
		{"Monthly Income", o.Income.String()},
		{"Monthly Expenses", o.Expenses.Abs().String()},
		{"Net Cash Flow", o.NetCashFlow.SignedString()},
	}
	if o.HasNetWorth {
		rows = append(rows, []string{"Net Worth", o.NetWorth.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	})

	return doc.String()
}
