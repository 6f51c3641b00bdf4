package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType separates money coming in from money going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the known types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single ledger entry owned by one user.
type Transaction struct {
	ID         int64
	UserID     int64
	CategoryID *int64
	Title      string
	Amount     decimal.Decimal // Always positive; Type carries the sign.
	Type       TransactionType
	Date       time.Time // Calendar date, UTC midnight.
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	CategoryID *int64
	Type       *TransactionType
	Page       int
	Limit      int
}

// Offset returns the row offset of the requested page.
func (f TransactionFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}

	return (f.Page - 1) * f.Limit
}

// TransactionPatch carries a partial update. Nil fields are left untouched;
// ClearCategory removes the category even though CategoryID is nil.
type TransactionPatch struct {
	Title         *string
	Amount        *decimal.Decimal
	Type          *TransactionType
	Date          *time.Time
	Note          *string
	CategoryID    *int64
	ClearCategory bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.Title == nil && p.Amount == nil && p.Type == nil && p.Date == nil &&
		p.Note == nil && p.CategoryID == nil && !p.ClearCategory
}
