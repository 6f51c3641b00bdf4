package usecase

import (
	"context"

	"budget/internal/domain/entity"
)

// AuditUsecase is the worker side of the security event stream.
type AuditUsecase interface {
	// RecordEvent stores a delivered event; redelivery is harmless.
	RecordEvent(ctx context.Context, event *entity.AuthEvent) error

	// SweepExpiredSessions deletes refresh tokens past their expiry.
	SweepExpiredSessions(ctx context.Context) (int64, error)
}
