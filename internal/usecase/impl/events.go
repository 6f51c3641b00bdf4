package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	"budget/internal/domain/service"

	"github.com/google/uuid"
)

const publishTimeout = 5 * time.Second

// eventEmitter publishes audit events off the request path. A failed publish
// is logged and dropped.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func (e *eventEmitter) emit(ctx context.Context, eventType entity.AuthEventType, userID *int64, reason string) {
	if e == nil || e.publisher == nil {
		return
	}

	event := &entity.AuthEvent{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Reason:     reason,
		OccurredAt: e.now(),
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, e.logger)
	pubCtx := context.WithoutCancel(ctx)

	go func() {
		ctx, cancel := context.WithTimeout(pubCtx, publishTimeout)
		defer cancel()

		if err := e.publisher.PublishAuthEvent(ctx, event); err != nil {
			logger.Warn("Failed to publish auth event",
				slog.String("event_type", string(event.Type)),
				slog.Any("error", err),
			)
		}
	}()
}

func userRef(id int64) *int64 {
	return &id
}
