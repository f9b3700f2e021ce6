package finsight

import "testing"

func TestParseTransactionType(t *testing.T) {
	if typ, err := ParseTransactionType(" Income "); err != nil || typ != Income {
		t.Errorf("ParseTransactionType(Income) = %v, %v", typ, err)
	}
	if _, err := ParseTransactionType("transfer"); err == nil {
		t.Error("expected an error for an unknown type")
	}
}

func TestFilterTransactions(t *testing.T) {
	txs := []Transaction{
		tx("2024-01-01", "Salary Payment", 5000, Income, "salary"),
		tx("2024-01-02", "Whole Foods Market", -156.89, Expense, "grocery"),
		tx("2024-01-05", "Chipotle Mexican Grill", -12.85, Expense, "dining"),
		tx("2024-01-07", "Amazon Purchase", -289.99, Expense, "shopping"),
	}

	got := FilterTransactions(txs, TransactionFilter{Categories: []string{"grocery", "dining"}})
	if len(got) != 2 || got[0].Category != "grocery" || got[1].Category != "dining" {
		t.Errorf("category filter kept %v", got)
	}

	got = FilterTransactions(txs, TransactionFilter{Types: []TransactionType{Income}})
	if len(got) != 1 || got[0].Description != "Salary Payment" {
		t.Errorf("type filter kept %v", got)
	}

	min, max := M(-200.0), M(-100.0)
	got = FilterTransactions(txs, TransactionFilter{Min: &min, Max: &max})
	if len(got) != 1 || got[0].Description != "Whole Foods Market" {
		t.Errorf("amount range filter kept %v", got)
	}

	if got := FilterTransactions(txs, TransactionFilter{}); len(got) != len(txs) {
		t.Errorf("zero filter kept %d of %d rows", len(got), len(txs))
	}
}

func TestSortTransactionsByDate(t *testing.T) {
	txs := []Transaction{
		tx("2024-01-07", "Amazon Purchase", -289.99, Expense, "shopping"),
		tx("2024-01-01", "Salary Payment", 5000, Income, "salary"),
		tx("2024-01-02", "Whole Foods Market", -156.89, Expense, "grocery"),
	}
	sorted := SortTransactionsByDate(txs)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Date.Before(sorted[i-1].Date) {
			t.Fatalf("not sorted: %v", sorted)
		}
	}
	if txs[0].Description != "Amazon Purchase" {
		t.Error("input slice was reordered")
	}
}

// The classifier and the aggregator chained together, starting from
// uncategorized rows.
func TestClassifyThenSummarize(t *testing.T) {
	txs := []Transaction{
		tx("2024-01-02", "Whole Foods Market", -156.89, Expense, ""),
		tx("2024-01-01", "Salary Payment", 5000.00, Income, ""),
	}

	classified := NewClassifier(DefaultRules()).ClassifyAll(txs)
	if classified[0].Category != "grocery" || classified[1].Category != "salary" {
		t.Fatalf("classified = %q, %q, want grocery, salary",
			classified[0].Category, classified[1].Category)
	}

	buckets := MonthlySummary(classified)
	if len(buckets) != 1 || buckets[0].Month != month(2024, 1) {
		t.Fatalf("buckets = %v", buckets)
	}
	assertMoney(t, "income", buckets[0].Income, 5000.00)
	assertMoney(t, "expense", buckets[0].Expense, -156.89)
	assertMoney(t, "net cash flow", buckets[0].NetCashFlow, 4843.11)
}
