package entity

import "github.com/shopspring/decimal"

// Summary aggregates a user's ledger over a date range.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
	Months       []MonthTotals
	ByCategory   []CategoryTotal
}

// MonthTotals holds income and expense for one calendar month.
type MonthTotals struct {
	Year    int
	Month   int // 1-12
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryTotal is the expense sum for one category. A nil CategoryID is "Uncategorized".
type CategoryTotal struct {
	CategoryID *int64
	Name       string
	Amount     decimal.Decimal
}
