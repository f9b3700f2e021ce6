package renderer

import (
	"strings"
	"testing"

	"github.com/finsight/finsight"
)

func mustSample(t *testing.T) *finsight.Dataset {
	t.Helper()
	ds, err := finsight.SampleDataset()
	if err != nil {
		t.Fatalf("SampleDataset() error = %v", err)
	}
	return ds
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output is missing %q:\n%s", want, got)
		}
	}
}

func TestOverviewMarkdown(t *testing.T) {
	ds := mustSample(t)
	o := finsight.NewOverview(ds, finsight.MustParseDate("2024-01-15"))
	got := OverviewMarkdown(o)
	assertContains(t, got,
		"# Financial Overview for 2024-01",
		"Monthly Income",
		"$5,000.00",
		"Net Worth",
	)
}

func TestTransactionsMarkdown(t *testing.T) {
	ds := mustSample(t)
	got := TransactionsMarkdown(ds.Transactions)
	assertContains(t, got,
		"| Date | Description | Category | Type | Amount |",
		"Whole Foods Market",
		"-$156.89",
	)
	if strings.Contains(got, "uncategorized") {
		t.Errorf("sample transactions are fully categorized:\n%s", got)
	}

	uncat := []finsight.Transaction{{
		Date:        finsight.MustParseDate("2024-01-01"),
		Description: "Mystery Charge",
		Amount:      finsight.M(-10),
		Type:        finsight.Expense,
	}}
	assertContains(t, TransactionsMarkdown(uncat), "1 transactions are still uncategorized")
}

func TestTransactionsMarkdown_Empty(t *testing.T) {
	assertContains(t, TransactionsMarkdown(nil), "No transactions match.")
}

func TestCashflowMarkdown(t *testing.T) {
	ds := mustSample(t)
	buckets := finsight.MonthlySummary(ds.Transactions)
	byCategory := finsight.ExpenseByCategory(ds.Transactions)
	got := CashflowMarkdown(buckets, byCategory)
	assertContains(t, got,
		"## Monthly Cash Flow",
		"| 2024-01 |",
		"## Averages",
		"## Spending by Category",
		"grocery",
	)
}

func TestPortfolioMarkdown(t *testing.T) {
	ds := mustSample(t)
	report := finsight.NewPortfolioReport(ds.Holdings, finsight.DefaultPrices())
	got := PortfolioMarkdown(report)
	assertContains(t, got,
		"# Investment Portfolio",
		"| AAPL |",
		"**Total**",
	)
}

func TestNetWorthMarkdown(t *testing.T) {
	ds := mustSample(t)
	report := finsight.NewNetWorthReport(ds.NetWorth)
	got := NetWorthMarkdown(report)
	assertContains(t, got,
		"# Net Worth",
		"Current Net Worth: $63,040.40",
		"per month",
		"## History",
	)
}

func TestGoalsMarkdown(t *testing.T) {
	ds := mustSample(t)
	report := finsight.NewGoalsReport(ds.Goals, finsight.MustParseDate("2024-06-15"))
	got := GoalsMarkdown(report)
	assertContains(t, got,
		"# Financial Goals on 2024-06-15",
		"Emergency Fund",
		"| Goal | Target | Current | Progress | Days Left | Required/Month | Status |",
		"behind",
	)
}
