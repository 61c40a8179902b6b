package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger writes GORM output to the request-scoped slog logger when the context carries one.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger.With(slog.String("component", "gorm")),
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	var (
		level slog.Level
		msg   string
		extra []slog.Attr
	)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		level, msg = slog.LevelError, "Postgres query failed"
		extra = append(extra, slog.String("error", err.Error()))
	case slow && l.level >= logger.Warn:
		level, msg = slog.LevelWarn, "Postgres slow query"
		extra = append(extra, slog.Duration("slow_threshold", l.slowThreshold))
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "Postgres query"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.logger
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
