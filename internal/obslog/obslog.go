// Package obslog configures the process-wide standard logger used by
// every package in this module, and carries a *log.Logger through
// context.Context the way bfs.BFSOptions.Ctx carries cancellation —
// there is no structured logger in the dependency set this project
// draws from; stdlib log with a fixed microsecond-precision timestamp
// is the idiom the reference pack's own services use.
package obslog

import (
	"context"
	"log"
	"os"
)

type loggerKey struct{}

// Init points the standard logger at stdout with a timestamp precise
// enough to order pipeline stages within a single conversion.
func Init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// WithLogger attaches l to ctx, for Debugf/Warnf calls further down the
// call chain to pick up. Callers that never attach one get the
// package-level default logger.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func fromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// Debugf logs a low-severity diagnostic line, picking the logger
// carried on ctx if any, else the package default.
func Debugf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Printf("DEBUG "+format, args...)
}

// Warnf logs a defensive-skip or other recoverable-condition line,
// picking the logger carried on ctx if any, else the package default.
func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Printf("WARN "+format, args...)
}
