// Package logger is the public API of domainlog. Most users only need to
// import this package.
//
// A Logger forwards leveled, domain-tagged messages to exactly one
// handler at a time:
//
//	logger.Log(logger.InfoLevel, "storage", "opened %s in %v", path, elapsed)
//	logger.Warningf("cluster", "peer %d unreachable", id)
//
// The process-wide Logger returned by Default is created on first use
// and starts with the console handler, which writes ERROR, CRITICAL and
// WARNING lines to stderr and everything else to stdout.
//
// The handler is swapped with SetHandler, which takes a function and an
// opaque data value that is passed back on every call, or SetHandlerOf,
// which takes a handler.Handler carrying its own state. Both replace the
// handler and data together under one lock, so no message is ever
// delivered to one registration's function with another's data:
//
//	logger.SetHandler(func(lvl logger.Level, domain, msg string, data any) {
//	    data.(*Collector).Add(lvl, domain, msg)
//	}, collector)
//
// Passing a nil function disables logging. Log then returns before
// formatting anything, so disabled logging costs a mutex round trip.
//
// Handler calls are serialized: two handler calls never overlap. A
// handler that blocks therefore blocks every logging goroutine; keep
// handlers short.
//
// For isolated instances (tests, embedded components) use New or the
// Builder instead of the package-level functions.
package logger
