package postgres

import (
	"context"

	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type authEventRepository struct {
	db *gorm.DB
}

// NewAuthEventRepository is the constructor for authEventRepository.
func NewAuthEventRepository(db *gorm.DB) repository.AuthEventRepository {
	return &authEventRepository{db: db}
}

// Record inserts the event; a redelivered ID hits ON CONFLICT DO NOTHING.
func (repo *authEventRepository) Record(ctx context.Context, event *entity.AuthEvent) error {
	row := &model.AuthEventModel{
		ID:         event.ID,
		Type:       string(event.Type),
		UserID:     event.UserID,
		RequestID:  event.RequestID,
		Reason:     event.Reason,
		OccurredAt: event.OccurredAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			// The user row is gone; keep the event without the reference.
			row.UserID = nil
			err = repo.db.WithContext(ctx).
				Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
				Create(row).Error
		}
		if err != nil {
			return errors.Wrap(err, "failed to record auth event")
		}
	}

	event.RecordedAt = row.RecordedAt

	return nil
}
