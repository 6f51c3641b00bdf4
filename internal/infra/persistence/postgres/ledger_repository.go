package postgres

import (
	"context"
	"time"

	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	sqlDateLayout        = "2006-01-02"
	uncategorizedLabel   = "Uncategorized"
	transactionTableName = "transactions"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

// List returns one page of the user's transactions, newest date first, plus the
// total number of rows matching the filter.
func (repo *ledgerRepository) List(ctx context.Context, userID int64, filter entity.TransactionFilter) ([]*entity.Transaction, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", userID)
	base = applyDateRange(base, "date", filter.From, filter.To)
	if filter.CategoryID != nil {
		base = base.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Type != nil {
		base = base.Where("type = ?", string(*filter.Type))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count transactions")
	}

	var rows []*model.TransactionModel
	err := base.Session(&gorm.Session{}).
		Order("date DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list transactions")
	}

	txns := make([]*entity.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, toTransactionDomain(row))
	}

	return txns, total, nil
}

// FindByID loads a transaction only when it belongs to userID.
func (repo *ledgerRepository) FindByID(ctx context.Context, userID, id int64) (*entity.Transaction, error) {
	var row model.TransactionModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return toTransactionDomain(&row), nil
}

// Create inserts the transaction and fills in its ID and timestamps.
func (repo *ledgerRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	row := fromTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	txn.ID = row.ID
	txn.CreatedAt = row.CreatedAt
	txn.UpdatedAt = row.UpdatedAt

	return nil
}

// Update applies the non-nil fields of patch to a transaction owned by userID and
// returns the stored row.
func (repo *ledgerRepository) Update(ctx context.Context, userID, id int64, patch entity.TransactionPatch) (*entity.Transaction, error) {
	updates := patchColumns(patch)
	updates["updated_at"] = time.Now()

	var row model.TransactionModel
	result := repo.db.WithContext(ctx).
		Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transaction")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTransactionNotFound
	}

	return toTransactionDomain(&row), nil
}

// Delete removes a transaction owned by userID.
func (repo *ledgerRepository) Delete(ctx context.Context, userID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete transaction")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

type totalsRow struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

type monthRow struct {
	Year    int
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

type categoryRow struct {
	CategoryID *int64
	Name       string
	Amount     decimal.Decimal
}

const (
	sumIncome  = "COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'income'), 0)"
	sumExpense = "COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'expense'), 0)"
)

// Summarize runs three aggregate queries over the same owner/date scope.
func (repo *ledgerRepository) Summarize(ctx context.Context, userID int64, from, to *time.Time) (*entity.Summary, error) {
	scope := func() *gorm.DB {
		q := repo.db.WithContext(ctx).
			Table(transactionTableName+" AS t").
			Where("t.user_id = ?", userID)

		return applyDateRange(q, "t.date", from, to)
	}

	var totals totalsRow
	if err := scope().
		Select(sumIncome + " AS income, " + sumExpense + " AS expense").
		Scan(&totals).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum transactions")
	}

	var months []monthRow
	if err := scope().
		Select("EXTRACT(YEAR FROM t.date)::int AS year, EXTRACT(MONTH FROM t.date)::int AS month, " +
			sumIncome + " AS income, " + sumExpense + " AS expense").
		Group("1, 2").
		Order("1, 2").
		Scan(&months).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum transactions by month")
	}

	var byCategory []categoryRow
	if err := scope().
		Select("t.category_id AS category_id, COALESCE(c.name, ?) AS name, SUM(t.amount) AS amount", uncategorizedLabel).
		Joins("LEFT JOIN categories AS c ON c.id = t.category_id").
		Where("t.type = ?", string(entity.TransactionTypeExpense)).
		Group("t.category_id, c.name").
		Order("amount DESC, name ASC").
		Scan(&byCategory).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum expenses by category")
	}

	summary := &entity.Summary{
		TotalIncome:  totals.Income,
		TotalExpense: totals.Expense,
		Net:          totals.Income.Sub(totals.Expense),
		Months:       make([]entity.MonthTotals, 0, len(months)),
		ByCategory:   make([]entity.CategoryTotal, 0, len(byCategory)),
	}
	for _, m := range months {
		summary.Months = append(summary.Months, entity.MonthTotals(m))
	}
	for _, c := range byCategory {
		summary.ByCategory = append(summary.ByCategory, entity.CategoryTotal(c))
	}

	return summary, nil
}

// applyDateRange adds inclusive calendar-date bounds. Nil bounds are open.
func applyDateRange(q *gorm.DB, column string, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where(column+" >= ?", from.Format(sqlDateLayout))
	}
	if to != nil {
		q = q.Where(column+" <= ?", to.Format(sqlDateLayout))
	}

	return q
}

func patchColumns(patch entity.TransactionPatch) map[string]any {
	updates := make(map[string]any)
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
	if patch.Type != nil {
		updates["type"] = string(*patch.Type)
	}
	if patch.Date != nil {
		updates["date"] = patch.Date.Format(sqlDateLayout)
	}
	if patch.Note != nil {
		if *patch.Note == "" {
			updates["note"] = nil
		} else {
			updates["note"] = *patch.Note
		}
	}
	switch {
	case patch.ClearCategory:
		updates["category_id"] = nil
	case patch.CategoryID != nil:
		updates["category_id"] = *patch.CategoryID
	}

	return updates
}

// --- Mapper Functions ---

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:         data.ID,
		UserID:     data.UserID,
		CategoryID: data.CategoryID,
		Title:      data.Title,
		Amount:     data.Amount,
		Type:       entity.TransactionType(data.Type),
		Date:       data.Date,
		Note:       data.Note,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:         data.ID,
		UserID:     data.UserID,
		CategoryID: data.CategoryID,
		Title:      data.Title,
		Amount:     data.Amount,
		Type:       string(data.Type),
		Date:       data.Date,
		Note:       data.Note,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
