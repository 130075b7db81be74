package logger

import (
	"github.com/philipp01105/domainlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
	WarningLevel  = core.WarningLevel
	MessageLevel  = core.MessageLevel
	InfoLevel     = core.InfoLevel
	DebugLevel    = core.DebugLevel
	TraceLevel    = core.TraceLevel
)

// LevelName returns the canonical short name of level, or "UNKNOWN" when
// level is not one of the defined values.
func LevelName(level Level) string {
	return level.String()
}
