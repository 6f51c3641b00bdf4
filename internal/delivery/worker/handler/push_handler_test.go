package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"budget/config"
	"budget/internal/domain/constants"
	"budget/internal/domain/entity"
	"budget/internal/infra/pubsub"
	mocks "budget/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, env string) (*PushHandler, *mocks.MockAuditUsecase) {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = env

	auditUC := mocks.NewMockAuditUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuditUC: auditUC,
	})

	return h, auditUC
}

func pushBody(t *testing.T, event *entity.AuthEvent) string {
	t.Helper()

	data, err := pubsub.EncodeAuthEvent(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": event.RequestID}
	msg.Subscription = "projects/p/subscriptions/auth-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, decorate ...func(*http.Request)) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, fn := range decorate {
		fn(req)
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func sampleEvent() *entity.AuthEvent {
	userID := int64(42)

	return &entity.AuthEvent{
		ID:         uuid.New(),
		Type:       entity.AuthEventLoginSucceeded,
		UserID:     &userID,
		RequestID:  "req-1",
		OccurredAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}
}

func TestPushHandler_RecordsEvent(t *testing.T) {
	h, auditUC := newTestPushHandler(t, constants.EnvDevelop)
	event := sampleEvent()

	auditUC.EXPECT().
		RecordEvent(mock.Anything, mock.MatchedBy(func(got *entity.AuthEvent) bool {
			return got.ID == event.ID && got.Type == event.Type && *got.UserID == 42 && got.OccurredAt.Equal(event.OccurredAt)
		})).
		Return(nil).
		Once()

	rec := servePush(h, pushBody(t, event))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StorageFailureAsksForRedelivery(t *testing.T) {
	h, auditUC := newTestPushHandler(t, constants.EnvDevelop)

	auditUC.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

	rec := servePush(h, pushBody(t, sampleEvent()))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.EnvDevelop)

	noID, err := json.Marshal(map[string]any{"type": "session.login"})
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "missing id", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString(noID) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := servePush(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesTokenOutsideDevelop(t *testing.T) {
	h, auditUC := newTestPushHandler(t, constants.EnvProduction)
	require.True(t, h.verifyPushAuth)

	h.verifier = func(_ context.Context, req *http.Request) error {
		if req.Header.Get(echo.HeaderAuthorization) != "Bearer good" {
			return errors.New("bad token")
		}

		return nil
	}

	rec := servePush(h, pushBody(t, sampleEvent()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	auditUC.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(nil).Once()

	rec = servePush(h, pushBody(t, sampleEvent()), func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGoogleTokenVerifier_RequiresBearer(t *testing.T) {
	verify := googleTokenVerifier("https://worker.example.com/push")

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verify(context.Background(), req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	require.Error(t, verify(context.Background(), req))
}
