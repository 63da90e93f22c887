package telemetry

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once sync.Once
	base *zap.Logger
)

func logger() *zap.Logger {
	once.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		base = l.WithOptions(zap.AddCallerSkip(2))
	})
	return base
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(logger().Info, msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	write(logger().Warn, msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(logger().Error, msg, fields)
}

func write(fn func(string, ...zap.Field), msg string, fields map[string]any) {
	zfields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zfields = append(zfields, zap.Any(k, v))
	}
	fn(msg, zfields...)
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = logger().Sync()
}
