// Package logger is a thin ctx-first wrapper around a process-wide zap logger.
package logger

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var global atomic.Pointer[zap.SugaredLogger]

func init() {
	global.Store(zap.NewNop().Sugar())
}

// Init builds the production logger at the given level ("debug", "info", ...).
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	global.Store(l.Sugar())
	return nil
}

// Set replaces the process logger. Used by tests with zaptest/observer cores.
func Set(l *zap.Logger) {
	global.Store(l.WithOptions(zap.AddCallerSkip(1)).Sugar())
}

func Sync() {
	_ = global.Load().Sync()
}

// With returns a context whose log lines carry the given key/value pairs.
func With(ctx context.Context, kv ...interface{}) context.Context {
	return context.WithValue(ctx, ctxKey{}, from(ctx).With(kv...))
}

func from(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
			return l
		}
	}
	return global.Load()
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Errorf(format, args...)
}

func Error(ctx context.Context, msg string) {
	from(ctx).Error(msg)
}

func Info(ctx context.Context, msg string) {
	from(ctx).Info(msg)
}

func Fatal(ctx context.Context, err error) {
	from(ctx).Fatal(err)
}
