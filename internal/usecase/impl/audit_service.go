package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type auditService struct {
	eventRepo        repository.AuthEventRepository
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
	now              func() time.Time
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	EventRepo        repository.AuthEventRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Logger           *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		eventRepo:        params.EventRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *auditService) RecordEvent(ctx context.Context, event *entity.AuthEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = srv.now()
	}

	if err := srv.eventRepo.Record(ctx, event); err != nil {
		return errors.Wrap(err, "failed to record auth event")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Auth event recorded",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

func (srv *auditService) SweepExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := srv.refreshTokenRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired refresh tokens")
	}

	return deleted, nil
}
