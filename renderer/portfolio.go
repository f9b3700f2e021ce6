package renderer

import (
	"fmt"
	"strings"

	"github.com/finsight/finsight"
)

// PortfolioMarkdown renders the valued holdings with a totals row.
func PortfolioMarkdown(report *finsight.PortfolioReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Investment Portfolio\n\n")
	if len(report.Holdings) == 0 {
		fmt.Fprintln(&b, "No holdings to value.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Shares | Price | Value | Cost | Gain/Loss | Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, h := range report.Holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			h.Symbol,
			h.Shares,
			h.CurrentPrice.String(),
			h.CurrentValue.String(),
			h.TotalCost.String(),
			h.GainLoss.SignedString(),
			h.GainLossPct.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | | | **%s** | **%s** | **%s** | **%s** |\n",
		"Total",
		report.TotalValue.String(),
		report.TotalCost.String(),
		report.TotalGainLoss.SignedString(),
		report.Return.SignedString(),
	)

	return b.String()
}
