// Package sloghandler connects domainlog and log/slog in both
// directions.
//
// New turns any slog.Handler into a domainlog handler: each message
// becomes a slog.Record with a "domain" attribute. CRITICAL and TRACE
// use the custom levels LevelCritical (ERROR+4) and LevelTrace
// (DEBUG-4). Errors from the slog.Handler are counted in Sink.Stats,
// not returned.
//
// Bridge goes the other way: it is a slog.Handler that renders records
// as text (message followed by key=value pairs) and logs them through a
// domainlog Logger, so libraries written against slog share the
// process's single handler.
package sloghandler
