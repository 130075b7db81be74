package sloghandler

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/handler"
)

// DomainKey is the attribute key carrying the message domain.
const DomainKey = "domain"

// Levels without a direct slog counterpart.
const (
	LevelCritical = slog.LevelError + 4
	LevelTrace    = slog.LevelDebug - 4
)

// Level maps a domainlog level onto slog.
func Level(l core.Level) slog.Level {
	switch l {
	case core.ErrorLevel:
		return slog.LevelError
	case core.CriticalLevel:
		return LevelCritical
	case core.WarningLevel:
		return slog.LevelWarn
	case core.MessageLevel, core.InfoLevel:
		return slog.LevelInfo
	case core.DebugLevel:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// FromSlog maps a slog level onto the nearest domainlog level.
func FromSlog(level slog.Level) core.Level {
	switch {
	case level >= LevelCritical:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// Sink hands every message to a slog.Handler as a slog.Record with a
// "domain" attribute. Errors returned by the slog.Handler are not passed
// back to the caller; they are counted in Stats.
type Sink struct {
	h     slog.Handler
	stats *handler.Stats
}

// NewSink creates a Sink writing to h
func NewSink(h slog.Handler) *Sink {
	return &Sink{h: h, stats: handler.NewStats()}
}

// Handle converts one message to a slog.Record. h's Enabled is consulted
// first; messages it rejects are neither processed nor failed.
func (s *Sink) Handle(level core.Level, domain, message string) {
	ctx := context.Background()
	lvl := Level(level)
	if !s.h.Enabled(ctx, lvl) {
		return
	}
	r := slog.NewRecord(time.Now(), lvl, message, 0)
	r.AddAttrs(slog.String(DomainKey, domain))
	if err := s.h.Handle(ctx, r); err != nil {
		s.stats.IncrementFailed()
		return
	}
	s.stats.IncrementProcessed(level)
}

// Func returns s as a two-part handler that ignores its data argument.
func (s *Sink) Func() handler.Func {
	return handler.Of(s)
}

// Stats returns a snapshot of the current statistics
func (s *Sink) Stats() handler.Snapshot {
	return s.stats.GetSnapshot()
}

// New returns a handler that writes to h through a new Sink. Use NewSink
// directly to read its Stats.
func New(h slog.Handler) handler.Func {
	return NewSink(h).Func()
}
