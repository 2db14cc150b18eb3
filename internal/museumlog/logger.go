// Package museumlog wraps logrus the way services/tile-server/cmd/server
// configures it: a single structured logger with a JSON formatter, passed
// around as *Logger rather than used as a package-level global, so a host
// application can run several editor sessions with independent log
// sinks.
package museumlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus.Entry preset with the "component" field for the
// editor kernel.
type Logger struct {
	entry *logrus.Entry
}

// New creates a kernel logger writing JSON lines to stderr at the given
// level name ("debug", "info", "warn", "error").
func New(level string) *Logger {
	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(os.Stderr)
	if lvl, err := logrus.ParseLevel(level); err == nil {
		base.SetLevel(lvl)
	} else {
		base.SetLevel(logrus.InfoLevel)
	}
	return &Logger{entry: base.WithField("component", "museum-editor")}
}

// Noop returns a logger that discards everything, useful for tests.
func Noop() *Logger {
	base := logrus.New()
	base.SetOutput(noopWriter{})
	return &Logger{entry: base.WithField("component", "museum-editor")}
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }

// With returns a derived logger carrying additional structured fields,
// e.g. Logger.With("floor", floorID).
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) Debug(msg string) { l.entry.Debug(msg) }
func (l *Logger) Info(msg string)  { l.entry.Info(msg) }
func (l *Logger) Warn(msg string)  { l.entry.Warn(msg) }
func (l *Logger) Error(msg string) { l.entry.Error(msg) }

// Debugf logs a formatted debug message. The hot pointer-move path should
// prefer this only behind a rate limiter (see internal/snap) since it can
// be called tens of thousands of times per session.
func (l *Logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
