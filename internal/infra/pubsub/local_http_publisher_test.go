package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	userID := int64(12)
	event := &entity.AuthEvent{
		ID:         uuid.New(),
		Type:       entity.AuthEventLoginSucceeded,
		UserID:     &userID,
		RequestID:  "req-1",
		OccurredAt: time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC),
	}

	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, publisher.PublishAuthEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.ID.String(), received.Message.MessageID)
	assert.Equal(t, "session.login", received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	decoded, err := DecodeAuthEvent(data)
	require.NoError(t, err)
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, userID, *decoded.UserID)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishAuthEvent(context.Background(), &entity.AuthEvent{ID: uuid.New(), Type: entity.AuthEventLoggedOut})

	assert.Error(t, err)
}

func TestDecodeAuthEvent_RejectsIncompletePayload(t *testing.T) {
	_, err := DecodeAuthEvent([]byte(`{"type":"session.login"}`))
	assert.Error(t, err)

	_, err = DecodeAuthEvent([]byte(`{"id":"` + uuid.NewString() + `"}`))
	assert.Error(t, err)

	_, err = DecodeAuthEvent([]byte(`not json`))
	assert.Error(t, err)
}
