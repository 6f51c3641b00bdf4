package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"budget/config"
	"budget/internal/usecase"

	"go.uber.org/fx"
)

// JanitorParams holds dependencies for the Janitor
type JanitorParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	AuditUC usecase.AuditUsecase
}

// Janitor periodically deletes refresh tokens that expired without being
// redeemed or revoked.
type Janitor struct {
	interval time.Duration
	auditUC  usecase.AuditUsecase
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Unix nanos of the last sweep that reached the database, and of start.
	lastSweep atomic.Int64
	startedAt atomic.Int64
}

// NewJanitor ties the sweep loop to the fx lifecycle.
func NewJanitor(params JanitorParams) *Janitor {
	j := &Janitor{
		interval: params.Cfg.Worker.SweepInterval,
		auditUC:  params.AuditUC,
		logger:   params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			j.start()

			return nil
		},
		OnStop: func(context.Context) error {
			j.stop()

			return nil
		},
	})

	return j
}

func (j *Janitor) start() {
	j.startedAt.Store(time.Now().UnixNano())
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		j.run(ctx)
	}()

	j.logger.Info("Session janitor started", slog.Duration("interval", j.interval))
}

func (j *Janitor) stop() {
	if j.cancel == nil {
		return
	}

	j.cancel()
	j.wg.Wait()
	j.logger.Info("Session janitor stopped")
}

func (j *Janitor) run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.sweep(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	deleted, err := j.auditUC.SweepExpiredSessions(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Error("Failed to sweep expired sessions", slog.Any("error", err))
		}

		return
	}

	j.lastSweep.Store(time.Now().UnixNano())
	if deleted > 0 {
		j.logger.Info("Swept expired sessions", slog.Int64("deleted", deleted))
	}
}

// LastSweep returns when the last successful sweep finished, or the zero time.
func (j *Janitor) LastSweep() time.Time {
	n := j.lastSweep.Load()
	if n == 0 {
		return time.Time{}
	}

	return time.Unix(0, n)
}

// Healthy reports false once sweeps have been failing for three intervals.
// Before the first successful sweep the clock runs from start, so a worker
// that never reaches the database goes unhealthy too.
func (j *Janitor) Healthy(now time.Time) bool {
	since := j.lastSweep.Load()
	if since == 0 {
		since = j.startedAt.Load()
	}
	if since == 0 {
		return true
	}

	return now.Sub(time.Unix(0, since)) <= 3*j.interval
}
