package handler

import (
	"github.com/philipp01105/domainlog/core"
)

// Func is the two-part handler form: a function plus opaque data supplied at
// registration and handed back on every call. A nil Func disables logging.
//
// The facility only stores the data value; keeping whatever it refers to
// alive and valid is the registrant's job.
type Func func(level core.Level, domain, message string, data any)

// Handler is a capability that carries its own state, so it needs no
// separate data value.
type Handler interface {
	// Handle receives one fully rendered message
	Handle(level core.Level, domain, message string)
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(level core.Level, domain, message string)

// Handle calls f(level, domain, message).
func (f HandlerFunc) Handle(level core.Level, domain, message string) {
	f(level, domain, message)
}

// Of converts a Handler to a Func that ignores the data argument.
// A nil Handler yields the nil (disabled) Func.
func Of(h Handler) Func {
	if h == nil {
		return nil
	}
	return func(level core.Level, domain, message string, _ any) {
		h.Handle(level, domain, message)
	}
}
