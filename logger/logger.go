package logger

import (
	"fmt"

	"github.com/philipp01105/domainlog/handler"
	"github.com/philipp01105/domainlog/handler/consolehandler"
)

// Logger dispatches leveled, domain-tagged messages to exactly one handler.
// The handler is installed lazily on first use and can be swapped at any
// time; all methods are safe for concurrent use. The zero Logger is ready
// to use and starts with the console handler.
//
// Handler calls are serialized. A handler that blocks blocks every caller
// of this Logger; there is no timeout.
type Logger struct {
	reg registry
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	fn      handler.Func
	data    any
	custom  bool
	console consolehandler.Config
}

// NewBuilder creates a new logger builder. Without further options the
// Logger starts with a console handler on os.Stdout/os.Stderr.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHandler sets the handler and data installed on first use.
// A nil fn builds a Logger that starts disabled.
func (b *Builder) WithHandler(fn handler.Func, data any) *Builder {
	b.fn = fn
	b.data = data
	b.custom = true
	return b
}

// WithHandlerOf is WithHandler for a handler that carries its own state
func (b *Builder) WithHandlerOf(h handler.Handler) *Builder {
	return b.WithHandler(handler.Of(h), nil)
}

// WithConsole configures the default console handler. It has no effect
// when a handler was set with WithHandler.
func (b *Builder) WithConsole(cfg consolehandler.Config) *Builder {
	b.console = cfg
	return b
}

// Disabled builds a Logger that drops everything until a handler is set
func (b *Builder) Disabled() *Builder {
	return b.WithHandler(nil, nil)
}

// Build creates the Logger instance. Nothing is constructed until the
// Logger is first used.
func (b *Builder) Build() *Logger {
	fn, data, custom, console := b.fn, b.data, b.custom, b.console
	l := &Logger{}
	l.reg.initial = func() (handler.Func, any) {
		if custom {
			return fn, data
		}
		return consolehandler.New(console).Func(), nil
	}
	return l
}

// New creates a Logger that starts with the default console handler
func New() *Logger {
	return NewBuilder().Build()
}

// SetHandler replaces the active handler and its data as a single unit.
// A nil fn disables logging. The Logger keeps data only as an opaque
// value; the caller is responsible for whatever it refers to.
func (l *Logger) SetHandler(fn handler.Func, data any) {
	l.reg.set(fn, data)
}

// SetHandlerOf installs a handler that carries its own state
func (l *Logger) SetHandlerOf(h handler.Handler) {
	l.reg.set(handler.Of(h), nil)
}

// Handler returns the active handler and data. It exists so tests can
// save, verify and restore state; production code should not branch on it.
func (l *Logger) Handler() (handler.Func, any) {
	return l.reg.get()
}

// Enabled reports whether a handler is installed
func (l *Logger) Enabled() bool {
	fn, _ := l.reg.get()
	return fn != nil
}

// Log renders format and args with fmt.Sprintf and passes the result to
// the active handler together with level and domain. When logging is
// disabled it returns before any formatting happens.
//
// Formatting runs outside the lock, so String methods of args may log
// themselves. The handler sees whichever registration is current when
// the lock is taken.
func (l *Logger) Log(level Level, domain, format string, args ...any) {
	if !l.Enabled() {
		return
	}
	l.reg.invoke(level, domain, fmt.Sprintf(format, args...))
}

// Errorf logs at ErrorLevel
func (l *Logger) Errorf(domain, format string, args ...any) {
	l.Log(ErrorLevel, domain, format, args...)
}

// Criticalf logs at CriticalLevel
func (l *Logger) Criticalf(domain, format string, args ...any) {
	l.Log(CriticalLevel, domain, format, args...)
}

// Warningf logs at WarningLevel
func (l *Logger) Warningf(domain, format string, args ...any) {
	l.Log(WarningLevel, domain, format, args...)
}

// Messagef logs at MessageLevel
func (l *Logger) Messagef(domain, format string, args ...any) {
	l.Log(MessageLevel, domain, format, args...)
}

// Infof logs at InfoLevel
func (l *Logger) Infof(domain, format string, args ...any) {
	l.Log(InfoLevel, domain, format, args...)
}

// Debugf logs at DebugLevel
func (l *Logger) Debugf(domain, format string, args ...any) {
	l.Log(DebugLevel, domain, format, args...)
}

// Tracef logs at TraceLevel
func (l *Logger) Tracef(domain, format string, args ...any) {
	l.Log(TraceLevel, domain, format, args...)
}
