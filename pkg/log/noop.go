package log

import "context"

// NoopLogger discards everything. Intended for tests.
type NoopLogger struct{}

func (NoopLogger) Debug(ctx context.Context, args ...any)                  {}
func (NoopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (NoopLogger) Info(ctx context.Context, args ...any)                   {}
func (NoopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (NoopLogger) Warn(ctx context.Context, args ...any)                   {}
func (NoopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (NoopLogger) Error(ctx context.Context, args ...any)                  {}
func (NoopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (NoopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (NoopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (NoopLogger) Panic(ctx context.Context, args ...any)                  {}
func (NoopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (NoopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (NoopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}
