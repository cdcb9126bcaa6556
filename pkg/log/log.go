// Package log provides the logger interface used across the repository,
// backed by go.uber.org/zap.
package log

import (
	"go.uber.org/zap"
)

// Logger is the logging interface consumed by the rest of the repository.
type Logger interface {
	Debug(msg string)
	Debugf(template string, args ...interface{})
	Info(msg string)
	Infof(template string, args ...interface{})
	Warning(msg string)
	Warningf(template string, args ...interface{})
	Error(msg string)
	Errorf(template string, args ...interface{})
	// With returns a child logger carrying the given key/value pairs.
	With(args ...interface{}) Logger
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewDefaultProductionLogger returns a JSON logger writing to stderr.
func NewDefaultProductionLogger() (Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &zapLogger{sugar: logger.Sugar()}, nil
}

// NewSilentLogger returns a logger which discards everything.
func NewSilentLogger() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debug(msg string) {
	l.sugar.Debug(msg)
}

func (l *zapLogger) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

func (l *zapLogger) Info(msg string) {
	l.sugar.Info(msg)
}

func (l *zapLogger) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

func (l *zapLogger) Warning(msg string) {
	l.sugar.Warn(msg)
}

func (l *zapLogger) Warningf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

func (l *zapLogger) Error(msg string) {
	l.sugar.Error(msg)
}

func (l *zapLogger) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

func (l *zapLogger) With(args ...interface{}) Logger {
	return &zapLogger{sugar: l.sugar.With(args...)}
}
