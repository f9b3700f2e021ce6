package finsight

// Holding is one investment position as loaded from the dataset.
type Holding struct {
	Symbol        string
	Name          string
	Shares        Quantity
	PurchasePrice Money
	PurchaseDate  Date
}

// PriceTable maps a symbol to its current unit price. It is an injectable
// dependency: reports use DefaultPrices unless the caller supplies a table of
// its own (see DecodePrices for loading one from a provider file).
type PriceTable map[string]Money

// Price returns the current price for a symbol. Unknown symbols resolve to a
// zero price rather than an error: the holding is then valued at zero and its
// gain/loss shows the full cost as lost. Callers that must tell "worthless"
// from "unpriced" should check the table before valuing.
func (p PriceTable) Price(symbol string) Money {
	if price, ok := p[symbol]; ok {
		return price
	}
	return M(0)
}

// ValuedHolding is a holding joined with its current price.
type ValuedHolding struct {
	Holding
	CurrentPrice Money
	CurrentValue Money // Shares × CurrentPrice
	TotalCost    Money // Shares × PurchasePrice
	GainLoss     Money // CurrentValue − TotalCost
	GainLossPct  Percent
}

// ValuePortfolio values each holding against the price table. The result
// preserves input order and the input slice is not modified. A zero cost
// basis (e.g. zero shares) yields a zero gain/loss percentage.
func ValuePortfolio(holdings []Holding, prices PriceTable) []ValuedHolding {
	out := make([]ValuedHolding, 0, len(holdings))
	for _, h := range holdings {
		v := ValuedHolding{Holding: h}
		v.CurrentPrice = prices.Price(h.Symbol)
		v.CurrentValue = v.CurrentPrice.Mul(h.Shares)
		v.TotalCost = h.PurchasePrice.Mul(h.Shares)
		v.GainLoss = v.CurrentValue.Sub(v.TotalCost)
		v.GainLossPct = v.GainLoss.PercentOf(v.TotalCost)
		out = append(out, v)
	}
	return out
}

// PortfolioReport is the valued portfolio with its rollups.
type PortfolioReport struct {
	Holdings      []ValuedHolding
	TotalValue    Money
	TotalCost     Money
	TotalGainLoss Money
	Return        Percent // blended return, zero when nothing was invested
}

// NewPortfolioReport values the holdings and sums the portfolio totals.
func NewPortfolioReport(holdings []Holding, prices PriceTable) *PortfolioReport {
	report := &PortfolioReport{Holdings: ValuePortfolio(holdings, prices)}
	for _, v := range report.Holdings {
		report.TotalValue = report.TotalValue.Add(v.CurrentValue)
		report.TotalCost = report.TotalCost.Add(v.TotalCost)
		report.TotalGainLoss = report.TotalGainLoss.Add(v.GainLoss)
	}
	report.Return = report.TotalGainLoss.PercentOf(report.TotalCost)
	return report
}

// Positions returns the number of holdings in the report.
func (r *PortfolioReport) Positions() int { return len(r.Holdings) }
