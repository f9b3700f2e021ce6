package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/finsight/finsight"
)

// TransactionsMarkdown renders a transaction table, most recent first.
func TransactionsMarkdown(txs []finsight.Transaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Transactions\n\n")
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions match.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Description | Category | Type | Amount |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|")
	sorted := finsight.SortTransactionsByDate(txs)
	for i := len(sorted) - 1; i >= 0; i-- {
		tx := sorted[i]
		category := tx.Category
		if category == "" {
			category = finsight.OtherCategory
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Description, category, tx.Type, tx.Amount.SignedString())
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		n := 0
		for _, tx := range txs {
			if !tx.Categorized() {
				n++
			}
		}
		if n == 0 {
			return false
		}
		fmt.Fprintf(w, "\n%d transactions are still uncategorized.\n", n)
		return true
	})

	return b.String()
}
