package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/finsight/finsight"
	md "github.com/nao1215/markdown"
)

// NetWorthMarkdown renders the net worth history and the trend figures
// derived from it.
func NetWorthMarkdown(report *finsight.NetWorthReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Net Worth\n\n")
	if len(report.Entries) == 0 {
		fmt.Fprintln(&b, "No net worth entries.")
		return b.String()
	}

	fmt.Fprintf(&b, "Current Net Worth: %s\n\n", report.Latest.NetWorth)
	if len(report.Entries) > 1 {
		fmt.Fprintf(&b, "Change since %s: %s (%s), averaging %s per month.\n\n",
			report.Entries[len(report.Entries)-2].Date,
			report.Change.SignedString(),
			report.ChangePct.SignedString(),
			report.MonthlyGrowthRate.SignedString(),
		)
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		rows = append(rows, []string{
			e.Date.String(),
			e.Assets.String(),
			e.Liabilities.String(),
			e.NetWorth.String(),
		})
	}
	doc.H2("History")
	doc.Table(md.TableSet{
		Header: []string{"Date", "Assets", "Liabilities", "Net Worth"},
		Rows:   rows,
	})
	b.WriteString(doc.String())

	return b.String()
}
