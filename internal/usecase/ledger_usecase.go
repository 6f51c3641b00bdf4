package usecase

import (
	"context"
	"time"

	"budget/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CreateTransactionInput is a new ledger entry. CategoryID is optional.
type CreateTransactionInput struct {
	Title      string
	Amount     decimal.Decimal
	Type       entity.TransactionType
	Date       time.Time
	Note       *string
	CategoryID *int64
}

// TransactionPage is one page of a filtered listing.
type TransactionPage struct {
	Items []*entity.Transaction
	Page  int
	Limit int
	Total int64
	Pages int
}

// LedgerUsecase manages a user's income and expense transactions.
type LedgerUsecase interface {
	ListTransactions(ctx context.Context, userID int64, filter entity.TransactionFilter) (*TransactionPage, error)
	CreateTransaction(ctx context.Context, userID int64, input CreateTransactionInput) (*entity.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id int64, patch entity.TransactionPatch) (*entity.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id int64) error
	GetSummary(ctx context.Context, userID int64, from, to *time.Time) (*entity.Summary, error)
}

// CategoryUsecase manages global and user-defined categories.
type CategoryUsecase interface {
	ListCategories(ctx context.Context, userID int64) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, userID int64, name string) (*entity.Category, error)
}
