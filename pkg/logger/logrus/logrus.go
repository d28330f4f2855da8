// Package logrus adapts github.com/sirupsen/logrus to the logger facade.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/dresoeta/indoshim/pkg/logger"
)

// Adapter wraps a logrus entry behind logger.Logger.
type Adapter struct {
	entry *logrus.Entry
}

// NewAdapter creates an adapter around an existing logrus logger.
func NewAdapter(l *logrus.Logger) *Adapter {
	return &Adapter{entry: logrus.NewEntry(l)}
}

// WithField implements logger.Logger.
func (a *Adapter) WithField(key string, value any) logger.Logger {
	return &Adapter{entry: a.entry.WithField(key, value)}
}

// WithFields implements logger.Logger.
func (a *Adapter) WithFields(fields map[string]any) logger.Logger {
	return &Adapter{entry: a.entry.WithFields(logrus.Fields(fields))}
}

// WithError implements logger.Logger.
func (a *Adapter) WithError(err error) logger.Logger {
	return &Adapter{entry: a.entry.WithError(err)}
}

// Debug implements logger.Logger.
func (a *Adapter) Debug(args ...any) { a.entry.Debug(args...) }

// Info implements logger.Logger.
func (a *Adapter) Info(args ...any) { a.entry.Info(args...) }

// Warn implements logger.Logger.
func (a *Adapter) Warn(args ...any) { a.entry.Warn(args...) }

// Error implements logger.Logger.
func (a *Adapter) Error(args ...any) { a.entry.Error(args...) }

// Fatal implements logger.Logger.
func (a *Adapter) Fatal(args ...any) { a.entry.Fatal(args...) }

// Debugf implements logger.Logger.
func (a *Adapter) Debugf(format string, args ...any) { a.entry.Debugf(format, args...) }

// Infof implements logger.Logger.
func (a *Adapter) Infof(format string, args ...any) { a.entry.Infof(format, args...) }

// Warnf implements logger.Logger.
func (a *Adapter) Warnf(format string, args ...any) { a.entry.Warnf(format, args...) }

// Errorf implements logger.Logger.
func (a *Adapter) Errorf(format string, args ...any) { a.entry.Errorf(format, args...) }

// Fatalf implements logger.Logger.
func (a *Adapter) Fatalf(format string, args ...any) { a.entry.Fatalf(format, args...) }

// SetLevel implements logger.Logger.
func (a *Adapter) SetLevel(level logger.Level) {
	a.entry.Logger.SetLevel(toLogrusLevel(level))
}

// GetLevel implements logger.Logger.
func (a *Adapter) GetLevel() logger.Level {
	return toLevel(a.entry.Logger.GetLevel())
}

func toLogrusLevel(level logger.Level) logrus.Level {
	switch level {
	case logger.DebugLevel:
		return logrus.DebugLevel
	case logger.InfoLevel:
		return logrus.InfoLevel
	case logger.WarnLevel:
		return logrus.WarnLevel
	case logger.ErrorLevel:
		return logrus.ErrorLevel
	case logger.FatalLevel:
		return logrus.FatalLevel
	default:
		return logrus.PanicLevel
	}
}

func toLevel(level logrus.Level) logger.Level {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return logger.DebugLevel
	case logrus.InfoLevel:
		return logger.InfoLevel
	case logrus.WarnLevel:
		return logger.WarnLevel
	case logrus.ErrorLevel:
		return logger.ErrorLevel
	case logrus.FatalLevel, logrus.PanicLevel:
		return logger.FatalLevel
	default:
		return logger.InfoLevel
	}
}
