package repository

import (
	"context"
	"errors"
	"time"

	"budget/internal/domain/entity"
)

// ErrTransactionNotFound is returned when the transaction is absent or owned by someone else.
var ErrTransactionNotFound = errors.New("transaction not found")

// LedgerRepository persists income/expense transactions. Every method is scoped by owner.
type LedgerRepository interface {
	List(ctx context.Context, userID int64, filter entity.TransactionFilter) ([]*entity.Transaction, int64, error)
	FindByID(ctx context.Context, userID, id int64) (*entity.Transaction, error)
	Create(ctx context.Context, txn *entity.Transaction) error
	Update(ctx context.Context, userID, id int64, patch entity.TransactionPatch) (*entity.Transaction, error)
	Delete(ctx context.Context, userID, id int64) error

	// Summarize aggregates totals, months and per-category expenses. Nil bounds are open.
	Summarize(ctx context.Context, userID int64, from, to *time.Time) (*entity.Summary, error)
}
