package zerologhandler

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/handler"
)

// DomainKey is the field name carrying the message domain.
const DomainKey = "domain"

// Level maps a domainlog level onto zerolog. CRITICAL becomes ErrorLevel.
func Level(l core.Level) zerolog.Level {
	switch l {
	case core.ErrorLevel, core.CriticalLevel:
		return zerolog.ErrorLevel
	case core.WarningLevel:
		return zerolog.WarnLevel
	case core.MessageLevel, core.InfoLevel:
		return zerolog.InfoLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// New returns a handler that writes every message to zl.
func New(zl zerolog.Logger) handler.Func {
	return func(level core.Level, domain, message string, _ any) {
		zl.WithLevel(Level(level)).Str(DomainKey, domain).Msg(message)
	}
}
