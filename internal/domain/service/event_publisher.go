package service

import (
	"context"

	"budget/internal/domain/entity"
)

// EventPublisher ships security events to a message queue for the audit worker.
type EventPublisher interface {
	PublishAuthEvent(ctx context.Context, event *entity.AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
