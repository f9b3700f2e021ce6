// Package finsight provides the aggregation and categorization engine behind
// the `pfd` personal finance dashboard. It turns tabular financial records
// into derived, report-ready views:
//
//   - Transaction Categorization: classifying free-text transaction
//     descriptions into spending categories from an ordered keyword table.
//   - Cash-Flow Aggregation: grouping transactions into monthly
//     income/expense/net-flow buckets and cash-flow statistics.
//   - Portfolio Valuation: joining investment holdings against a price table
//     to compute market value, cost basis and gain/loss.
//   - Goal Projection: progress, days remaining and the periodic savings
//     required to reach each savings goal by its deadline.
//   - Net-Worth Tracking: assets minus liabilities over time, with change
//     and growth-rate derivations.
//
// All derivations are pure, stateless transforms over in-memory tables; the
// only I/O in this package is the dataset loader, which reads the fixed
// CSV/ZIP layout described in the docs package. Monetary math is exact,
// backed by decimal arithmetic, and rounding happens only at the rendering
// boundary.
package finsight
