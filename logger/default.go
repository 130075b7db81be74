package logger

import (
	"sync"

	"github.com/philipp01105/domainlog/handler"
)

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// Default returns the process-wide Logger, creating it on first use.
// It starts with the console handler on os.Stdout/os.Stderr.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// Package-level functions using the default logger

// SetHandler replaces the process-wide handler and data
func SetHandler(fn handler.Func, data any) {
	Default().SetHandler(fn, data)
}

// SetHandlerOf installs a self-contained handler process-wide
func SetHandlerOf(h handler.Handler) {
	Default().SetHandlerOf(h)
}

// Handler returns the process-wide handler and data, for tests
func Handler() (handler.Func, any) {
	return Default().Handler()
}

// Log logs a formatted message using the default logger
func Log(level Level, domain, format string, args ...any) {
	Default().Log(level, domain, format, args...)
}

// Errorf logs at ErrorLevel using the default logger
func Errorf(domain, format string, args ...any) {
	Default().Log(ErrorLevel, domain, format, args...)
}

// Criticalf logs at CriticalLevel using the default logger
func Criticalf(domain, format string, args ...any) {
	Default().Log(CriticalLevel, domain, format, args...)
}

// Warningf logs at WarningLevel using the default logger
func Warningf(domain, format string, args ...any) {
	Default().Log(WarningLevel, domain, format, args...)
}

// Messagef logs at MessageLevel using the default logger
func Messagef(domain, format string, args ...any) {
	Default().Log(MessageLevel, domain, format, args...)
}

// Infof logs at InfoLevel using the default logger
func Infof(domain, format string, args ...any) {
	Default().Log(InfoLevel, domain, format, args...)
}

// Debugf logs at DebugLevel using the default logger
func Debugf(domain, format string, args ...any) {
	Default().Log(DebugLevel, domain, format, args...)
}

// Tracef logs at TraceLevel using the default logger
func Tracef(domain, format string, args ...any) {
	Default().Log(TraceLevel, domain, format, args...)
}
