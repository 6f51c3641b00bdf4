package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budget/config"
	deliverycontext "budget/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output into slog. Queries are logged through the
// request-scoped logger when one is attached to ctx so SQL lines carry the
// request_id of the HTTP call that issued them.
type gormSlogLogger struct {
	base  *slog.Logger
	level logger.LogLevel
	slow  time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{base: baseLogger, level: logger.Warn, slow: slowQueryThreshold}
	if cfg != nil && cfg.Env.Debug {
		l.level = logger.Info
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	next := *l
	next.level = level

	return &next
}

// ParamsFilter drops bound values from logged SQL. Rows written by the auth
// flow hold password and refresh token hashes.
func (l *gormSlogLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, "GORM info", msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, "GORM warn", msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, "GORM error", msg, args)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, lvl slog.Level, title, msg string, args []any) {
	if l.level < threshold {
		return
	}
	if log := l.loggerFor(ctx); log != nil {
		log.LogAttrs(ctx, lvl, title, slog.String("message", fmt.Sprintf(msg, args...)))
	}
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}
	log := l.loggerFor(ctx)
	if log == nil {
		return
	}

	elapsed := time.Since(begin)
	lvl, title, extra, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)
	log.LogAttrs(ctx, lvl, title, attrs...)
}

// classify picks the level and message for a finished statement, or reports
// false when nothing should be written at the current level.
func (l *gormSlogLogger) classify(err error, elapsed time.Duration) (slog.Level, string, []slog.Attr, bool) {
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return 0, "", nil, false
	case err != nil && isClientConstraintError(err):
		// Duplicate names and dangling category ids surface as 4xx responses.
		return slog.LevelDebug, "GORM constraint rejected", []slog.Attr{
			slog.String("sqlstate", pgErrorCode(err)),
		}, l.level >= logger.Info
	case err != nil:
		return slog.LevelError, "GORM query failed", []slog.Attr{
			slog.String("error", err.Error()),
		}, l.level >= logger.Error
	case l.slow > 0 && elapsed > l.slow:
		return slog.LevelWarn, "GORM slow query", []slog.Attr{
			slog.Duration("slowThreshold", l.slow),
		}, l.level >= logger.Warn
	default:
		return slog.LevelInfo, "GORM query", nil, l.level >= logger.Info
	}
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func isClientConstraintError(err error) bool {
	return isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err) || isCheckConstraintViolation(err)
}
