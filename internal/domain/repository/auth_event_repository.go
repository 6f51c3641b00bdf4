package repository

import (
	"context"

	"budget/internal/domain/entity"
)

// AuthEventRepository stores the security audit trail.
type AuthEventRepository interface {
	// Record is idempotent on event ID so redelivered push messages are harmless.
	Record(ctx context.Context, event *entity.AuthEvent) error
}
