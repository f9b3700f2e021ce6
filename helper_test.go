package finsight

import (
	"testing"
	"time"
)

// tx is a helper for tests to build a transaction from consts.
func tx(date string, description string, amount float64, typ TransactionType, category string) Transaction {
	return Transaction{
		Date:        MustParseDate(date),
		Description: description,
		Amount:      M(amount),
		Type:        typ,
		Category:    category,
	}
}

// month is a helper for tests to build a calendar month.
func month(year int, m time.Month) CalendarMonth {
	return MonthOf(NewDate(year, m, 1))
}

// assertMoney fails the test when got is not the expected amount.
func assertMoney(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if !got.Equal(M(want)) {
		t.Errorf("%s = %s, want %s", name, got, M(want))
	}
}
