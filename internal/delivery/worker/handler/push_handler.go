// Package handler contains the worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"budget/config"
	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/constants"
	"budget/internal/domain/entity"
	"budget/internal/infra/pubsub"
	"budget/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(ctx context.Context, req *http.Request) error

// PushHandler stores security events delivered by Pub/Sub push.
type PushHandler struct {
	verifyPushAuth bool
	verifier       TokenVerifier
	auditUC        usecase.AuditUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	AuditUC usecase.AuditUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google pushes carry a token; local and develop setups skip it.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	audience := ""
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifier:       googleTokenVerifier(audience),
		auditUC:        params.AuditUC,
		logger:         params.Logger,
	}
}

// HandlePush acknowledges with 200 once the event is stored (or can never be),
// and answers 503 so Pub/Sub redelivers when storage is unavailable.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifier(ctx, c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pubsub.DecodeAuthEvent(data)
	if err != nil {
		logger.Error("[Worker] Failed to parse auth event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// The publishing request's ID wins so one trace spans API and worker.
	if requestID := requestIDOf(&pushMsg, event); requestID != "" {
		logger = logger.With(slog.String("origin_request_id", requestID))
		ctx = deliverycontext.WithLogger(ctx, logger)
	}

	if err := h.auditUC.RecordEvent(ctx, event); err != nil {
		logger.Error("[Worker] Failed to record auth event",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

func requestIDOf(pushMsg *pubsub.PushMessage, event *entity.AuthEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	return event.RequestID
}

// googleTokenVerifier validates against audience, or against the URL of the
// push endpoint when no audience is configured.
func googleTokenVerifier(audience string) TokenVerifier {
	return func(ctx context.Context, req *http.Request) error {
		authHeader := req.Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.New("missing authorization header")
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return errors.New("invalid authorization header format")
		}
		token := strings.TrimPrefix(authHeader, bearerPrefix)

		expected := audience
		if expected == "" {
			scheme := "https"
			if req.TLS == nil {
				scheme = "http"
			}
			expected = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
		}

		payload, err := idtoken.Validate(ctx, token, expected)
		if err != nil {
			return errors.Wrap(err, "failed to validate token")
		}

		if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
			return errors.Errorf("invalid issuer: %s", payload.Issuer)
		}

		if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
			return errors.New("email not verified")
		}

		return nil
	}
}
