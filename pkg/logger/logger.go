// Package logger provides context-aware structured logging on top of
// logrus. Commands attach a logger entry to their context; library code
// retrieves it with G(ctx) and falls back to the global entry.
package logger

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

var (
	// G is shorthand for GetLogger.
	G = GetLogger
	// L is the global fallback entry.
	L = logrus.NewEntry(newLogger())
)

// WithLogger attaches a logger entry to ctx.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, entry.WithContext(ctx))
}

// GetLogger returns the entry attached to ctx, or the global entry when
// none is attached.
func GetLogger(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok {
		return entry
	}
	return L.WithContext(ctx)
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Formatter = textFormatter()
	return l
}

// SetLevel sets the level of the global logger. Accepts the logrus level
// names (panic through trace).
func SetLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	L.Logger.SetLevel(parsed)
	return nil
}

// SetFormat switches the global logger between "text" and "json" output.
func SetFormat(format string) {
	switch format {
	case "json":
		L.Logger.Formatter = &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		}
	default:
		L.Logger.Formatter = textFormatter()
	}
}

// SetOutput redirects the global logger.
func SetOutput(w io.Writer) {
	L.Logger.SetOutput(w)
}

func textFormatter() logrus.Formatter {
	return &logrus.TextFormatter{
		TimestampFormat: time.RFC3339Nano,
		FullTimestamp:   true,
	}
}
