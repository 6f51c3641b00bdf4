package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget/config"
	"budget/internal/delivery/worker/handler"

	"github.com/stretchr/testify/assert"
)

func TestHealthz_TracksJanitor(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{SweepInterval: time.Minute}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	janitor := &Janitor{interval: time.Minute, logger: logger}
	e := newEcho(cfg, logger, handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger}), janitor)

	get := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		return rec
	}

	rec := get()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	janitor.startedAt.Store(time.Now().Add(-10 * time.Minute).UnixNano())
	rec = get()
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "never swept since start")
	assert.JSONEq(t, `{"ok":false}`, rec.Body.String())

	janitor.lastSweep.Store(time.Now().Add(-time.Minute).UnixNano())
	rec = get()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"lastSweepAt"`)

	janitor.lastSweep.Store(time.Now().Add(-10 * time.Minute).UnixNano())
	rec = get()
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
}
