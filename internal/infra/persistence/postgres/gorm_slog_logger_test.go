package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"budget/config"
	deliverycontext "budget/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsQueryErrors(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_InfoOnlyInDebug(t *testing.T) {
	quiet, quietBuf := newBufferedGormLogger(false)
	quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newBufferedGormLogger(true)
	verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, verboseBuf.String(), "GORM query")

	silent := verbose.LogMode(logger.Silent)
	verboseBuf.Reset()
	silent.Trace(context.Background(), time.Now(), sqlFn, errors.New("x"))
	assert.Empty(t, verboseBuf.String())
}

func TestGormSlogLogger_ConstraintViolationsStayOutOfErrorLog(t *testing.T) {
	quiet, quietBuf := newBufferedGormLogger(false)
	dup := &pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate key"}

	quiet.Trace(context.Background(), time.Now(), sqlFn, dup)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newBufferedGormLogger(true)
	verbose.Trace(context.Background(), time.Now(), sqlFn, dup)
	assert.Contains(t, verboseBuf.String(), "GORM constraint rejected")
	assert.Contains(t, verboseBuf.String(), "sqlstate=23505")
	assert.NotContains(t, verboseBuf.String(), "GORM query failed")
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	l, baseBuf := newBufferedGormLogger(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), "request_id=req-42")
	assert.Contains(t, reqBuf.String(), "GORM query failed")
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l, _ := newBufferedGormLogger(true)

	sql, params := l.ParamsFilter(context.Background(), "SELECT * FROM refresh_tokens WHERE token_hash = $1", "secret-hash")

	assert.Equal(t, "SELECT * FROM refresh_tokens WHERE token_hash = $1", sql)
	assert.Nil(t, params)
}
