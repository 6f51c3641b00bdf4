package pubsub

import (
	"context"
	"testing"

	"budget/config"
	"budget/internal/domain/constants"
	"budget/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfigured drops events", func(t *testing.T) {
		p, err := buildPublisher(ctx, nil, discardLogger())
		require.NoError(t, err)
		require.IsType(t, &discardPublisher{}, p)
		assert.NoError(t, p.PublishAuthEvent(ctx, &entity.AuthEvent{Type: entity.AuthEventLoginSucceeded}))
		assert.NoError(t, p.Close())
	})

	t.Run("local", func(t *testing.T) {
		p, err := buildPublisher(ctx, &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:8081/push",
		}, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, p)
	})

	for name, cfg := range map[string]*config.PubSubConfig{
		"local without endpoint": {Provider: constants.PubSubProviderLocal},
		"google without topic":   {Provider: constants.PubSubProviderGoogle, ProjectID: "budget"},
		"unknown provider":       {Provider: "kafka"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := buildPublisher(ctx, cfg, discardLogger())
			assert.Error(t, err)
		})
	}
}
