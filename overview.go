package finsight

// Overview collects the headline figures of the dashboard for one month:
// that month's income, expenses and net cash flow, plus the latest known net
// worth.
type Overview struct {
	Month       CalendarMonth
	Income      Money
	Expenses    Money // signed, negative
	NetCashFlow Money
	NetWorth    Money
	HasNetWorth bool
}

// NewOverview sums the dataset's transactions for the month containing asOf
// and picks the most recent net-worth snapshot, when the dataset has one.
func NewOverview(ds *Dataset, asOf Date) *Overview {
	o := &Overview{Month: MonthOf(asOf)}
	for _, tx := range ds.Transactions {
		if MonthOf(tx.Date) != o.Month {
			continue
		}
		switch tx.Type {
		case Income:
			o.Income = o.Income.Add(tx.Amount)
		case Expense:
			o.Expenses = o.Expenses.Add(tx.Amount)
		}
	}
	o.NetCashFlow = o.Income.Add(o.Expenses)
	if len(ds.NetWorth) > 0 {
		o.NetWorth = ds.NetWorth[len(ds.NetWorth)-1].NetWorth
		o.HasNetWorth = true
	}
	return o
}
