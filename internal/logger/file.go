package logger

import (
	"go.uber.org/zap"
)

// FileLogger writes JSON log lines to a file through zap.
// The dashboard owns stdout, so this is how a running monitor records warnings.
type FileLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewFileLogger opens (or creates) path and returns a Logger writing to it.
// Debug lines are only recorded when debug is true.
func NewFileLogger(path, name string, debug bool) (*FileLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if name != "" {
		base = base.Named(name)
	}

	return &FileLogger{base: base, sugar: base.Sugar()}, nil
}

func (l *FileLogger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *FileLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *FileLogger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *FileLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Close flushes buffered entries.
func (l *FileLogger) Close() error {
	return l.base.Sync()
}
