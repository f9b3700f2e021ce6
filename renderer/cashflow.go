package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/finsight/finsight"
)

// CashflowMarkdown renders the monthly income and expense breakdown together
// with the averages and savings rate derived from it.
func CashflowMarkdown(buckets []finsight.MonthlyBucket, byCategory []finsight.CategoryAmount) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Cash Flow Analysis\n\n")
	if len(buckets) == 0 {
		fmt.Fprintln(&b, "No transactions to analyze.")
		return b.String()
	}

	fmt.Fprint(&b, "## Monthly Cash Flow\n\n")
	fmt.Fprintln(&b, "| Month | Income | Expenses | Net |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, bucket := range buckets {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			bucket.Month,
			bucket.Income.String(),
			bucket.Expense.Abs().String(),
			bucket.NetCashFlow.SignedString(),
		)
	}

	stats := finsight.NewCashflowStats(buckets)
	fmt.Fprint(&b, "\n## Averages\n\n")
	fmt.Fprintln(&b, "| Avg Monthly Income | Avg Monthly Expenses | Avg Monthly Savings | Savings Rate |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
		stats.AvgIncome.String(),
		stats.AvgExpense.Abs().String(),
		stats.AvgSavings.SignedString(),
		stats.SavingsRate,
	)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(byCategory) == 0 {
			return false
		}
		fmt.Fprint(w, "\n## Spending by Category\n\n")
		fmt.Fprintln(w, "| Category | Spent |")
		fmt.Fprintln(w, "|:---|---:|")
		for _, c := range byCategory {
			fmt.Fprintf(w, "| %s | %s |\n", c.Category, c.Amount.String())
		}
		return true
	})

	return b.String()
}
