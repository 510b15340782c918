package trialcalc

import "github.com/sirupsen/logrus"

// DefaultLogger implements Logger on top of a logrus logger
type DefaultLogger struct {
	entry *logrus.Entry
}

// NewDefaultLogger creates a logger that writes through the logrus standard logger
func NewDefaultLogger() *DefaultLogger {
	return NewLogrusLogger(logrus.StandardLogger())
}

// NewLogrusLogger adapts a configured logrus logger
func NewLogrusLogger(l *logrus.Logger) *DefaultLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &DefaultLogger{entry: logrus.NewEntry(l).WithField("component", "trialcalc")}
}

// Info logs an info message
func (l *DefaultLogger) Info(msg string, args ...any) {
	l.logger().Infof(msg, args...)
}

// Error logs an error message
func (l *DefaultLogger) Error(msg string, args ...any) {
	l.logger().Errorf(msg, args...)
}

// Debug logs a debug message
func (l *DefaultLogger) Debug(msg string, args ...any) {
	l.logger().Debugf(msg, args...)
}

// logger keeps the zero value usable
func (l *DefaultLogger) logger() *logrus.Entry {
	if l.entry == nil {
		l.entry = logrus.NewEntry(logrus.StandardLogger())
	}
	return l.entry
}

// SilentLogger implements Logger interface but does not output any logs
// This is useful for testing environments where log output is not desired
type SilentLogger struct{}

// NewSilentLogger creates a new silent logger instance
func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

// Info does nothing (silent)
func (l *SilentLogger) Info(msg string, args ...any) {}

// Error does nothing (silent)
func (l *SilentLogger) Error(msg string, args ...any) {}

// Debug does nothing (silent)
func (l *SilentLogger) Debug(msg string, args ...any) {}
