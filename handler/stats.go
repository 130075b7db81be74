package handler

import (
	"sync/atomic"

	"github.com/philipp01105/domainlog/core"
)

// Stats tracks per-level message counts for handlers that write output.
// All methods are safe for concurrent use.
type Stats struct {
	processed [core.TraceLevel + 1]atomic.Uint64
	unknown   atomic.Uint64
	failed    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed counts a message written successfully at level
func (s *Stats) IncrementProcessed(level core.Level) {
	if level.Valid() {
		s.processed[level].Add(1)
		return
	}
	s.unknown.Add(1)
}

// IncrementFailed counts a message whose write returned an error
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	if level.Valid() {
		return s.processed[level].Load()
	}
	return s.unknown.Load()
}

// GetFailed returns the number of failed writes
func (s *Stats) GetFailed() uint64 {
	return s.failed.Load()
}

// GetTotalProcessed returns the processed count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	total := s.unknown.Load()
	for i := range s.processed {
		total += s.processed[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
	}
	s.unknown.Store(0)
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics. Levels with no
// messages are omitted from Processed.
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed:   make(map[core.Level]uint64),
		FailedTotal: s.GetFailed(),
	}
	for _, l := range core.Levels() {
		if n := s.GetProcessed(l); n > 0 {
			snap.Processed[l] = n
			snap.ProcessedTotal += n
		}
	}
	if n := s.unknown.Load(); n > 0 {
		snap.ProcessedTotal += n
	}
	return snap
}
