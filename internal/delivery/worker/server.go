package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"budget/config"
	"budget/internal/delivery"
	"budget/internal/delivery/middleware"
	"budget/internal/delivery/worker/handler"
	"budget/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Janitor     *Janitor
}

// NewServer builds the push receiver. It also exposes /healthz, which turns
// 503 when the session janitor has stopped reaching the database.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params.Cfg, params.Logger, params.PushHandler, params.Janitor),
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler, janitor *Janitor) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	e.GET("/healthz", func(c echo.Context) error {
		status := http.StatusOK
		healthy := janitor.Healthy(time.Now())
		if !healthy {
			status = http.StatusServiceUnavailable
		}

		body := map[string]any{"ok": healthy}
		if last := janitor.LastSweep(); !last.IsZero() {
			body["lastSweepAt"] = last.UTC().Format(time.RFC3339)
		}

		return c.JSON(status, body)
	})
	e.POST("/push", push.HandlePush)

	return e
}

func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Worker.Port))
	s.logger.InfoContext(ctx, "Worker listening for auth events", slog.String("addr", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.InfoContext(ctx, "Worker shutting down")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
