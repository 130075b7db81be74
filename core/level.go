package core

// Level represents the severity of a log message. Lower values are more
// severe, so ErrorLevel < TraceLevel.
type Level int8

const (
	// ErrorLevel for errors the caller could not handle
	ErrorLevel Level = iota
	// CriticalLevel for conditions that will likely turn into errors
	CriticalLevel
	// WarningLevel for unexpected but recoverable conditions
	WarningLevel
	// MessageLevel for notable messages meant for the user
	MessageLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for function-level tracing
	TraceLevel
)

// levelNames is indexed by Level.
var levelNames = [...]string{
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
	WarningLevel:  "WARNING",
	MessageLevel:  "MESSAGE",
	InfoLevel:     "INFO",
	DebugLevel:    "DEBUG",
	TraceLevel:    "TRACE",
}

// String returns the canonical name of the level, or "UNKNOWN" for a value
// outside the defined set.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= ErrorLevel && l <= TraceLevel
}

// Severe reports whether messages at this level belong on the error stream.
func (l Level) Severe() bool {
	switch l {
	case ErrorLevel, CriticalLevel, WarningLevel:
		return true
	default:
		return false
	}
}

// Levels returns every defined level, most severe first.
func Levels() []Level {
	return []Level{ErrorLevel, CriticalLevel, WarningLevel, MessageLevel, InfoLevel, DebugLevel, TraceLevel}
}
