package finsight

// DefaultPrices returns the built-in price table. It is a static snapshot of
// common symbols, good enough for offline reporting; pass a table loaded with
// DecodePrices to value a portfolio against fresher quotes.
func DefaultPrices() PriceTable {
	return PriceTable{
		"AAPL":  M(175.50),
		"GOOGL": M(142.30),
		"MSFT":  M(378.85),
		"TSLA":  M(248.42),
		"SPY":   M(445.67),
		"VTI":   M(235.89),
		"NVDA":  M(455.30),
		"AMZN":  M(155.80),
		"META":  M(325.40),
		"BRK.B": M(380.25),
		"VOO":   M(425.60),
		"QQQ":   M(385.90),
		"JNJ":   M(160.25),
		"PG":    M(148.70),
		"KO":    M(64.15),
		"DIS":   M(92.40),
		"V":     M(252.80),
		"JPM":   M(168.90),
		"UNH":   M(492.15),
		"HD":    M(328.60),
	}
}
