package core

import "time"

// Record is a single rendered log message as seen by a handler that writes
// lines. It is built per call and must not be retained once the handler
// returns.
type Record struct {
	Time     time.Time
	Level    Level
	Domain   string
	Message  string
	ThreadID int
}
