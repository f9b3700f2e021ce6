package finsight

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestSampleDataset(t *testing.T) {
	ds, err := SampleDataset()
	if err != nil {
		t.Fatalf("SampleDataset() error = %v", err)
	}

	if len(ds.Transactions) != 10 {
		t.Errorf("got %d transactions, want 10", len(ds.Transactions))
	}
	if len(ds.NetWorth) != 4 {
		t.Errorf("got %d net worth entries, want 4", len(ds.NetWorth))
	}
	if len(ds.Holdings) != 4 {
		t.Errorf("got %d holdings, want 4", len(ds.Holdings))
	}
	if len(ds.Goals) != 4 {
		t.Errorf("got %d goals, want 4", len(ds.Goals))
	}

	first := ds.Transactions[0]
	if first.Description != "Salary Payment" || first.Type != Income {
		t.Errorf("unexpected first transaction: %+v", first)
	}
	assertMoney(t, "first amount", first.Amount, 5000.00)
}

func TestDecodeDataset_MissingTransactions(t *testing.T) {
	fsys := fstest.MapFS{
		"goals.csv": &fstest.MapFile{Data: []byte(sampleGoalsCSV)},
	}
	if _, err := DecodeDataset(fsys); err == nil {
		t.Fatal("expected an error for a dataset without transactions.csv")
	}
}

func TestDecodeDataset_CaseInsensitiveNames(t *testing.T) {
	fsys := fstest.MapFS{
		"Transactions.CSV": &fstest.MapFile{Data: []byte(sampleTransactionsCSV)},
	}
	ds, err := DecodeDataset(fsys)
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}
	if len(ds.Transactions) != 10 {
		t.Errorf("got %d transactions, want 10", len(ds.Transactions))
	}
}

func TestDecodeTransactions_MissingColumn(t *testing.T) {
	csv := "Date,Description,Type\n2024-01-01,Pay,income\n"
	_, err := DecodeTransactions(strings.NewReader(csv))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("error = %v, want ErrMissingColumn", err)
	}
	if !strings.Contains(err.Error(), "amount") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestDecodeTransactions_OptionalCategory(t *testing.T) {
	csv := "Date,Description,Amount,Type\n2024-01-01,Pay,5000.00,income\n"
	txs, err := DecodeTransactions(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if txs[0].Category != "" {
		t.Errorf("category = %q, want empty", txs[0].Category)
	}
}

func TestDecodeTransactions_BadRow(t *testing.T) {
	csv := "Date,Description,Amount,Type\n2024-01-01,Pay,not-a-number,income\n"
	_, err := DecodeTransactions(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected an error for a malformed amount")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the offending line", err)
	}
}

func TestDecodeHoldings_MissingColumn(t *testing.T) {
	csv := "Symbol,Name\nAAPL,Apple\n"
	_, err := DecodeHoldings(strings.NewReader(csv))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("error = %v, want ErrMissingColumn", err)
	}
}

func TestDecodeGoals(t *testing.T) {
	goals, err := DecodeGoals(strings.NewReader(sampleGoalsCSV))
	if err != nil {
		t.Fatalf("DecodeGoals() error = %v", err)
	}
	if goals[0].Name != "Emergency Fund" {
		t.Errorf("name = %q, want Emergency Fund", goals[0].Name)
	}
	assertMoney(t, "target", goals[0].TargetAmount, 25000)
	if goals[0].TargetDate.String() != "2024-12-31" {
		t.Errorf("target date = %s, want 2024-12-31", goals[0].TargetDate)
	}
}

func TestDecodeNetWorth_DerivesNetWorth(t *testing.T) {
	entries, err := DecodeNetWorth(strings.NewReader(sampleNetWorthCSV))
	if err != nil {
		t.Fatalf("DecodeNetWorth() error = %v", err)
	}
	assertMoney(t, "net worth", entries[0].NetWorth, 53269.75)
}
