package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/handler"
)

// DomainKey is the field name carrying the message domain.
const DomainKey = "domain"

// Level maps a domainlog level onto zap. CRITICAL becomes ErrorLevel
// because zap's higher levels panic or exit; TRACE becomes DebugLevel.
func Level(l core.Level) zapcore.Level {
	switch l {
	case core.ErrorLevel, core.CriticalLevel:
		return zapcore.ErrorLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	case core.MessageLevel, core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New returns a handler that writes every message to zl.
func New(zl *zap.Logger) handler.Func {
	return func(level core.Level, domain, message string, _ any) {
		write(zl, level, domain, message)
	}
}

// Handle is the two-part form: register it with a *zap.Logger as data.
//
//	logger.SetHandler(zaphandler.Handle, zapLogger)
//
// Any other data value drops the message.
func Handle(level core.Level, domain, message string, data any) {
	zl, ok := data.(*zap.Logger)
	if !ok || zl == nil {
		return
	}
	write(zl, level, domain, message)
}

func write(zl *zap.Logger, level core.Level, domain, message string) {
	if ce := zl.Check(Level(level), message); ce != nil {
		ce.Write(zap.String(DomainKey, domain))
	}
}
