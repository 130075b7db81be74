package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/handler"
)

// DomainKey is the field name carrying the message domain.
const DomainKey = "domain"

// Level maps a domainlog level onto logrus. CRITICAL becomes ErrorLevel
// so that logrus never exits or panics on our behalf.
func Level(l core.Level) logrus.Level {
	switch l {
	case core.ErrorLevel, core.CriticalLevel:
		return logrus.ErrorLevel
	case core.WarningLevel:
		return logrus.WarnLevel
	case core.MessageLevel, core.InfoLevel:
		return logrus.InfoLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// New returns a handler that writes every message through fl, which may be
// a *logrus.Logger or a *logrus.Entry carrying extra fields.
func New(fl logrus.FieldLogger) handler.Func {
	return func(level core.Level, domain, message string, _ any) {
		fl.WithField(DomainKey, domain).Log(Level(level), message)
	}
}
