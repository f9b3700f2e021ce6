package finsight

import "math"

// NetWorthEntry is one net-worth snapshot. NetWorth is Assets − Liabilities,
// derived by the loader when the dataset does not carry it.
type NetWorthEntry struct {
	Date        Date
	Assets      Money
	Liabilities Money
	NetWorth    Money
}

// NewNetWorthEntry builds a snapshot with the derived net worth.
func NewNetWorthEntry(on Date, assets, liabilities Money) NetWorthEntry {
	return NetWorthEntry{
		Date:        on,
		Assets:      assets,
		Liabilities: liabilities,
		NetWorth:    assets.Sub(liabilities),
	}
}

// NetWorthReport derives the trend figures from a series of snapshots,
// assumed one per month in chronological order, as the dataset format
// prescribes.
type NetWorthReport struct {
	Entries           []NetWorthEntry
	Latest            NetWorthEntry
	Change            Money   // latest net worth minus the previous snapshot's
	ChangePct         Percent // zero when there is no previous snapshot
	MonthlyGrowthRate Percent // geometric mean growth per snapshot interval
}

// NewNetWorthReport computes the latest position, the change against the
// previous snapshot, and the geometric monthly growth rate since the first
// snapshot. With fewer than two entries all trend figures are zero; a
// non-positive first net worth leaves the growth rate at zero since a
// geometric rate is undefined there.
func NewNetWorthReport(entries []NetWorthEntry) *NetWorthReport {
	report := &NetWorthReport{Entries: entries}
	if len(entries) == 0 {
		return report
	}
	report.Latest = entries[len(entries)-1]
	if len(entries) < 2 {
		return report
	}

	previous := entries[len(entries)-2]
	report.Change = report.Latest.NetWorth.Sub(previous.NetWorth)
	report.ChangePct = report.Change.PercentOf(previous.NetWorth)

	first := entries[0].NetWorth
	months := len(entries) - 1
	if first.IsPositive() && months > 0 {
		ratio := report.Latest.NetWorth.AsFloat() / first.AsFloat()
		report.MonthlyGrowthRate = Percent((math.Pow(ratio, 1/float64(months)) - 1) * 100)
	}
	return report
}
