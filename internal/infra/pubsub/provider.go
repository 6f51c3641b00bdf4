package pubsub

import (
	"context"
	"log/slog"

	"budget/config"
	"budget/internal/domain/constants"
	"budget/internal/domain/entity"
	"budget/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discardPublisher drops auth events when no provider is configured. Login
// and refresh never depend on publishing, so this keeps local runs working.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishAuthEvent(ctx context.Context, event *entity.AuthEvent) error {
	p.logger.DebugContext(ctx, "Auth event dropped, no pubsub provider",
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

func (p *discardPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the auth event transport from config and closes
// it when the app stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := buildPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}
	if _, ok := publisher.(*discardPublisher); ok {
		return publisher, nil
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.InfoContext(ctx, "Closing auth event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func buildPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.InfoContext(ctx, "PubSub not configured, auth events will be dropped")

		return &discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.InfoContext(ctx, "Publishing auth events over local HTTP",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
