package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatcher_Sample(t *testing.T) {
	var buf bytes.Buffer
	stats := sql.DBStats{MaxOpenConnections: 10}
	w := &poolWatcher{
		logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		stats:  func() sql.DBStats { return stats },
	}

	w.sample(context.Background())
	assert.Empty(t, buf.String(), "no waits since the zero baseline")

	stats.WaitCount = 2
	stats.WaitDuration = 10 * time.Millisecond
	w.sample(context.Background())
	assert.Contains(t, buf.String(), "Postgres pool wait observed")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avgWait=5ms")

	buf.Reset()
	stats.WaitCount = 3
	stats.WaitDuration = 200 * time.Millisecond
	w.sample(context.Background())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "Postgres pool wait detected")

	buf.Reset()
	w.sample(context.Background())
	assert.Empty(t, buf.String(), "counters did not move")
}
