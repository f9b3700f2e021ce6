package cmd

import (
	"testing"

	"github.com/finsight/finsight"
)

func TestTransactionsCmd_Filter(t *testing.T) {
	c := &transactionsCmd{
		categories: "grocery, dining",
		types:      "expense",
		min:        "-200",
		max:        "-5",
	}
	filter, err := c.filter()
	if err != nil {
		t.Fatalf("filter() error = %v", err)
	}
	if len(filter.Categories) != 2 || filter.Categories[1] != "dining" {
		t.Errorf("categories = %v, want [grocery dining]", filter.Categories)
	}
	if len(filter.Types) != 1 || filter.Types[0] != finsight.Expense {
		t.Errorf("types = %v, want [expense]", filter.Types)
	}
	if filter.Min == nil || !filter.Min.Equal(finsight.M(-200)) {
		t.Errorf("min = %v, want -200", filter.Min)
	}
	if filter.Max == nil || !filter.Max.Equal(finsight.M(-5)) {
		t.Errorf("max = %v, want -5", filter.Max)
	}
}

func TestTransactionsCmd_FilterErrors(t *testing.T) {
	if _, err := (&transactionsCmd{types: "transfer"}).filter(); err == nil {
		t.Error("expected an error for an unknown transaction type")
	}
	if _, err := (&transactionsCmd{min: "lots"}).filter(); err == nil {
		t.Error("expected an error for a malformed -min")
	}
}
