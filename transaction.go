package finsight

import (
	"fmt"
	"slices"
	"strings"
)

// TransactionType tells income and expense rows apart. The loader guarantees
// the type is consistent with the sign of the amount; the engine does not
// re-check it.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses "income" or "expense", case-insensitively.
func ParseTransactionType(str string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(str))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("invalid transaction type %q, want %q or %q", str, Income, Expense)
	}
}

// Transaction is a single financial movement. Amount is signed: positive for
// income, negative for expenses. Category may be empty until the classifier
// assigns one.
type Transaction struct {
	Date        Date
	Description string
	Amount      Money
	Type        TransactionType
	Category    string
}

// Categorized reports whether the transaction already carries a non-trivial
// category. Classified rows are never re-classified.
func (tx Transaction) Categorized() bool {
	return tx.Category != "" && tx.Category != OtherCategory
}

// TransactionFilter selects a subset of transactions. Nil fields match
// everything, so the zero filter selects all rows.
type TransactionFilter struct {
	Categories []string          // nil matches every category
	Types      []TransactionType // nil matches every type
	Min, Max   *Money            // nil bounds are open
}

// Match reports whether tx passes the filter.
func (f TransactionFilter) Match(tx Transaction) bool {
	if f.Categories != nil && !slices.Contains(f.Categories, tx.Category) {
		return false
	}
	if f.Types != nil && !slices.Contains(f.Types, tx.Type) {
		return false
	}
	if f.Min != nil && tx.Amount.LessThan(*f.Min) {
		return false
	}
	if f.Max != nil && tx.Amount.GreaterThan(*f.Max) {
		return false
	}
	return true
}

// FilterTransactions returns the transactions matching the filter, in input
// order. The input slice is not modified.
func FilterTransactions(txs []Transaction, f TransactionFilter) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if f.Match(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// SortTransactionsByDate returns a new slice sorted by ascending date.
func SortTransactionsByDate(txs []Transaction) []Transaction {
	out := slices.Clone(txs)
	slices.SortStableFunc(out, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case b.Date.Before(a.Date):
			return 1
		default:
			return 0
		}
	})
	return out
}
