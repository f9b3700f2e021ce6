package finsight

import (
	"slices"
)

// MonthlyBucket is the income/expense summary of one calendar month. Expense
// keeps its negative sign, so NetCashFlow is the plain sum of the two.
type MonthlyBucket struct {
	Month       CalendarMonth
	Income      Money
	Expense     Money
	NetCashFlow Money
}

// MonthlySummary groups transactions by calendar month and sums amounts per
// type. Every month present in the input has both an income and an expense
// total, zero when that type never occurs. Buckets are ordered by ascending
// month; an empty input yields an empty result. Sums keep full decimal
// precision, rounding is left to the presentation boundary.
func MonthlySummary(txs []Transaction) []MonthlyBucket {
	byMonth := make(map[CalendarMonth]*MonthlyBucket)
	var months []CalendarMonth
	for _, tx := range txs {
		month := MonthOf(tx.Date)
		bucket, ok := byMonth[month]
		if !ok {
			bucket = &MonthlyBucket{Month: month}
			byMonth[month] = bucket
			months = append(months, month)
		}
		switch tx.Type {
		case Income:
			bucket.Income = bucket.Income.Add(tx.Amount)
		case Expense:
			bucket.Expense = bucket.Expense.Add(tx.Amount)
		}
	}

	slices.SortFunc(months, func(a, b CalendarMonth) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		default:
			return 0
		}
	})

	out := make([]MonthlyBucket, 0, len(months))
	for _, month := range months {
		bucket := byMonth[month]
		bucket.NetCashFlow = bucket.Income.Add(bucket.Expense)
		out = append(out, *bucket)
	}
	return out
}

// CashflowStats are per-month averages over a monthly summary.
type CashflowStats struct {
	Months      int
	AvgIncome   Money
	AvgExpense  Money // signed, negative
	AvgSavings  Money
	SavingsRate Percent // average savings as a share of average income
}

// NewCashflowStats derives the average monthly income, expense and savings
// from a monthly summary. The savings rate is zero when income is zero.
func NewCashflowStats(buckets []MonthlyBucket) CashflowStats {
	stats := CashflowStats{Months: len(buckets)}
	if len(buckets) == 0 {
		return stats
	}
	var income, expense, savings Money
	for _, b := range buckets {
		income = income.Add(b.Income)
		expense = expense.Add(b.Expense)
		savings = savings.Add(b.NetCashFlow)
	}
	n := Q(len(buckets))
	stats.AvgIncome = income.Div(n)
	stats.AvgExpense = expense.Div(n)
	stats.AvgSavings = savings.Div(n)
	stats.SavingsRate = stats.AvgSavings.PercentOf(stats.AvgIncome)
	return stats
}

// CategoryAmount is a spending total for one category.
type CategoryAmount struct {
	Category string
	Amount   Money // absolute value of the expense total
}

// ExpenseByCategory sums expense transactions per category and returns the
// totals as positive amounts, largest first. Income rows are ignored.
func ExpenseByCategory(txs []Transaction) []CategoryAmount {
	byCategory := make(map[string]Money)
	var categories []string
	for _, tx := range txs {
		if tx.Type != Expense {
			continue
		}
		category := tx.Category
		if category == "" {
			category = OtherCategory
		}
		if _, ok := byCategory[category]; !ok {
			categories = append(categories, category)
		}
		byCategory[category] = byCategory[category].Add(tx.Amount.Abs())
	}

	out := make([]CategoryAmount, 0, len(categories))
	for _, category := range categories {
		out = append(out, CategoryAmount{Category: category, Amount: byCategory[category]})
	}
	slices.SortStableFunc(out, func(a, b CategoryAmount) int {
		switch {
		case b.Amount.LessThan(a.Amount):
			return -1
		case a.Amount.LessThan(b.Amount):
			return 1
		default:
			return 0
		}
	})
	return out
}
