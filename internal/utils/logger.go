package utils

import (
	"sync"

	"github.com/inconshreveable/log15"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger wraps a log15 logger shared by the server packages.
type Logger struct {
	log log15.Logger
}

// NewLogger creates the logger instance (singleton). Records go to stdout,
// and to logFilePath in logfmt when a path is given. Debug records reach
// stdout only in debug mode.
func NewLogger(logFilePath string, debugMode bool) *Logger {
	once.Do(func() {
		l, err := buildLogger(logFilePath, debugMode)
		if err != nil {
			l = log15.New("service", "dllist")
			l.SetHandler(log15.StdoutHandler)
			l.Error("Failed to open log file, logging to stdout only", "path", logFilePath, "err", err)
		}
		instance = &Logger{log: l}
	})
	return instance
}

func buildLogger(logFilePath string, debugMode bool) (log15.Logger, error) {
	lvl := log15.LvlInfo
	if debugMode {
		lvl = log15.LvlDebug
	}
	handler := log15.LvlFilterHandler(lvl, log15.StdoutHandler)

	if logFilePath != "" {
		fileHandler, err := log15.FileHandler(logFilePath, log15.LogfmtFormat())
		if err != nil {
			return nil, err
		}
		handler = log15.MultiHandler(handler, fileHandler)
	}

	l := log15.New("service", "dllist")
	l.SetHandler(handler)
	return l, nil
}

// GetLogger retrieves the singleton logger instance. Before NewLogger is
// called it returns a logger that drops everything.
func GetLogger() *Logger {
	if instance == nil {
		l := log15.New()
		l.SetHandler(log15.DiscardHandler())
		return &Logger{log: l}
	}
	return instance
}

// With returns a child logger carrying ctx on every record.
func (l *Logger) With(ctx ...interface{}) *Logger {
	return &Logger{log: l.log.New(ctx...)}
}

// Logging methods
func (l *Logger) Info(message string, ctx ...interface{}) {
	l.log.Info(message, ctx...)
}

func (l *Logger) Warn(message string, ctx ...interface{}) {
	l.log.Warn(message, ctx...)
}

func (l *Logger) Error(message string, ctx ...interface{}) {
	l.log.Error(message, ctx...)
}

func (l *Logger) Debug(message string, ctx ...interface{}) {
	l.log.Debug(message, ctx...)
}
