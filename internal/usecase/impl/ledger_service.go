package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	titleMaxLength = 100
	noteMaxLength  = 500
)

// maxAmount is the first value that does not fit NUMERIC(14,2).
var maxAmount = decimal.New(1, 12)

type ledgerService struct {
	txManager  repository.TransactionManager
	ledgerRepo repository.LedgerRepository
	logger     *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	LedgerRepo repository.LedgerRepository
	Logger     *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:  params.TxManager,
		ledgerRepo: params.LedgerRepo,
		logger:     params.Logger,
	}
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *ledgerService) ListTransactions(ctx context.Context, userID int64, filter entity.TransactionFilter) (*usecase.TransactionPage, error) {
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, domainerrors.Validation("Invalid 'type'.")
	}

	filter.Page = max(filter.Page, 1)
	switch {
	case filter.Limit < 1:
		filter.Limit = usecase.DefaultPageSize
	case filter.Limit > usecase.MaxPageSize:
		filter.Limit = usecase.MaxPageSize
	}

	items, total, err := srv.ledgerRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	pages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &usecase.TransactionPage{
		Items: items,
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: max(pages, 1),
	}, nil
}

func (srv *ledgerService) CreateTransaction(ctx context.Context, userID int64, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	title, err := cleanTitle(input.Title)
	if err != nil {
		return nil, err
	}
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.Validation("Type must be 'income' or 'expense'.")
	}
	if input.Date.IsZero() {
		return nil, domainerrors.Validation("Invalid date.")
	}
	note, err := cleanNote(input.Note)
	if err != nil {
		return nil, err
	}

	txn := &entity.Transaction{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Title:      title,
		Amount:     amount,
		Type:       input.Type,
		Date:       calendarDate(input.Date),
		Note:       note,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if txn.CategoryID != nil {
			if err := ensureCategoryVisible(ctx, repoFactory.CategoryRepo(), userID, *txn.CategoryID); err != nil {
				return err
			}
		}

		if err := repoFactory.LedgerRepo().Create(ctx, txn); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to create transaction")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Transaction created", slog.Int64("transaction_id", txn.ID))

	return txn, nil
}

func (srv *ledgerService) UpdateTransaction(ctx context.Context, userID, id int64, patch entity.TransactionPatch) (*entity.Transaction, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.Validation("No valid fields to update.")
	}

	if patch.Title != nil {
		title, err := cleanTitle(*patch.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &title
	}
	if patch.Amount != nil {
		amount, err := normalizeAmount(*patch.Amount)
		if err != nil {
			return nil, err
		}
		patch.Amount = &amount
	}
	if patch.Type != nil && !patch.Type.IsValid() {
		return nil, domainerrors.Validation("Invalid type.")
	}
	if patch.Date != nil {
		if patch.Date.IsZero() {
			return nil, domainerrors.Validation("Invalid date.")
		}
		date := calendarDate(*patch.Date)
		patch.Date = &date
	}
	if patch.Note != nil {
		note, err := cleanNote(patch.Note)
		if err != nil {
			return nil, err
		}
		// An empty note clears the column.
		cleared := ""
		if note == nil {
			note = &cleared
		}
		patch.Note = note
	}

	var updated *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if patch.CategoryID != nil && !patch.ClearCategory {
			if err := ensureCategoryVisible(ctx, repoFactory.CategoryRepo(), userID, *patch.CategoryID); err != nil {
				return err
			}
		}

		txn, err := repoFactory.LedgerRepo().Update(ctx, userID, id, patch)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrTransactionNotFound):
				return domainerrors.ErrTransactionNotFound
			case errors.Is(err, repository.ErrCategoryNotFound):
				return domainerrors.ErrCategoryNotFound
			default:
				return errors.Wrap(err, "failed to update transaction")
			}
		}
		updated = txn

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *ledgerService) DeleteTransaction(ctx context.Context, userID, id int64) error {
	if err := srv.ledgerRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return domainerrors.ErrTransactionNotFound
		}

		return errors.Wrap(err, "failed to delete transaction")
	}

	return nil
}

func (srv *ledgerService) GetSummary(ctx context.Context, userID int64, from, to *time.Time) (*entity.Summary, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, domainerrors.Validation("'from' must not be after 'to'.")
	}

	summary, err := srv.ledgerRepo.Summarize(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize transactions")
	}

	return summary, nil
}

func ensureCategoryVisible(ctx context.Context, categories repository.CategoryRepository, userID, categoryID int64) error {
	if _, err := categories.FindVisible(ctx, userID, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to check category")
	}

	return nil
}

func cleanTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", domainerrors.Validation("Title is required.")
	}
	if utf8.RuneCountInString(title) > titleMaxLength {
		return "", domainerrors.Validation("Title must be at most 100 characters.")
	}

	return title, nil
}

func cleanNote(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}

	note := strings.TrimSpace(*raw)
	if note == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(note) > noteMaxLength {
		return nil, domainerrors.Validation("Note must be at most 500 characters.")
	}

	return &note, nil
}

// normalizeAmount rounds to cents and validates the value that will be
// stored, so 0.004 is rejected rather than saved as 0.00.
func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if !rounded.IsPositive() {
		return decimal.Zero, domainerrors.Validation("Amount must be > 0.")
	}
	if rounded.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, domainerrors.Validation("Amount is too large.")
	}

	return rounded, nil
}

// calendarDate drops the clock so dates compare as whole days in UTC.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
