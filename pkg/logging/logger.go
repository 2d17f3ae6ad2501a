package logging

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey int

const (
	fieldsKey contextKey = iota
)

// ZapLogger wraps zap with per-request fields carried in the context.
type ZapLogger struct {
	inner *zap.Logger
}

func NewZapLogger(level zapcore.Level) (*ZapLogger, error) {
	s := defaultSettings(zap.NewAtomicLevelAt(level))
	logger, err := s.config.Build(s.opts...)
	if err != nil {
		return nil, err
	}
	return &ZapLogger{
		inner: logger,
	}, nil
}

// WithContextFields attaches fields to the context so every log call made
// with that context carries them.
func WithContextFields(ctx context.Context, fields ...zap.Field) context.Context {
	current := fieldsFromCtx(ctx)
	merged := make([]zap.Field, 0, len(current)+len(fields))
	merged = append(merged, current...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, fieldsKey, merged)
}

func fieldsFromCtx(ctx context.Context) []zap.Field {
	val := ctx.Value(fieldsKey)
	if val == nil {
		return nil
	}
	fields, ok := val.([]zap.Field)
	if !ok {
		return nil
	}
	return fields
}

func (l *ZapLogger) DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.inner.Debug(msg, append(fieldsFromCtx(ctx), fields...)...)
}

func (l *ZapLogger) InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.inner.Info(msg, append(fieldsFromCtx(ctx), fields...)...)
}

func (l *ZapLogger) ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.inner.Error(msg, append(fieldsFromCtx(ctx), fields...)...)
}

func (l *ZapLogger) Sync() error {
	return l.inner.Sync()
}
