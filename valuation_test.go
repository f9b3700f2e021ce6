package finsight

import "testing"

func TestValuePortfolio(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", Name: "Apple Inc.", Shares: Q(50), PurchasePrice: M(145.30)},
		{Symbol: "SPY", Name: "SPDR S&P 500 ETF", Shares: Q(100), PurchasePrice: M(398.45)},
	}

	valued := ValuePortfolio(holdings, DefaultPrices())
	if len(valued) != 2 {
		t.Fatalf("got %d valued holdings, want 2", len(valued))
	}

	aapl := valued[0]
	if aapl.Symbol != "AAPL" {
		t.Fatalf("input order not preserved, first symbol is %q", aapl.Symbol)
	}
	assertMoney(t, "current price", aapl.CurrentPrice, 175.50)
	assertMoney(t, "current value", aapl.CurrentValue, 8775.00)
	assertMoney(t, "total cost", aapl.TotalCost, 7265.00)
	assertMoney(t, "gain/loss", aapl.GainLoss, 1510.00)
	if !aapl.GainLossPct.Equal(20.7846) {
		t.Errorf("gain/loss pct = %s, want 20.78%%", aapl.GainLossPct)
	}
}

func TestValuePortfolio_UnknownSymbol(t *testing.T) {
	holdings := []Holding{
		{Symbol: "NOPE", Shares: Q(10), PurchasePrice: M(100)},
	}

	valued := ValuePortfolio(holdings, DefaultPrices())

	// an unpriced symbol values to zero and reads as a full loss.
	assertMoney(t, "current price", valued[0].CurrentPrice, 0)
	assertMoney(t, "current value", valued[0].CurrentValue, 0)
	assertMoney(t, "gain/loss", valued[0].GainLoss, -1000)
	if !valued[0].GainLossPct.Equal(-100) {
		t.Errorf("gain/loss pct = %s, want -100%%", valued[0].GainLossPct)
	}
}

func TestValuePortfolio_ZeroCostBasis(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", Shares: Q(0), PurchasePrice: M(145.30)},
	}

	valued := ValuePortfolio(holdings, DefaultPrices())
	if valued[0].GainLossPct != 0 {
		t.Errorf("gain/loss pct = %s, want 0 for a zero cost basis", valued[0].GainLossPct)
	}
}

func TestValuePortfolio_DoesNotMutateInput(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", Shares: Q(50), PurchasePrice: M(145.30)},
	}
	before := holdings[0]

	ValuePortfolio(holdings, DefaultPrices())

	if holdings[0] != before {
		t.Errorf("input holding was mutated: %+v", holdings[0])
	}
}

func TestNewPortfolioReport(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", Shares: Q(50), PurchasePrice: M(145.30)},
		{Symbol: "GOOGL", Shares: Q(25), PurchasePrice: M(128.50)},
	}

	report := NewPortfolioReport(holdings, DefaultPrices())
	if report.Positions() != 2 {
		t.Fatalf("positions = %d, want 2", report.Positions())
	}
	// AAPL: 50×175.50=8775 over 50×145.30=7265
	// GOOGL: 25×142.30=3557.50 over 25×128.50=3212.50
	assertMoney(t, "total value", report.TotalValue, 12332.50)
	assertMoney(t, "total cost", report.TotalCost, 10477.50)
	assertMoney(t, "total gain/loss", report.TotalGainLoss, 1855.00)
	if !report.Return.Equal(17.7046) {
		t.Errorf("blended return = %s, want 17.70%%", report.Return)
	}
}

func TestNewPortfolioReport_Empty(t *testing.T) {
	report := NewPortfolioReport(nil, DefaultPrices())
	if report.Positions() != 0 {
		t.Fatalf("positions = %d, want 0", report.Positions())
	}
	if report.Return != 0 {
		t.Errorf("blended return = %s, want 0 for an empty portfolio", report.Return)
	}
}
