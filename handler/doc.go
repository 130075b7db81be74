// Package handler defines what a log handler is and provides the
// shared pieces handler implementations build on.
//
// A handler comes in two shapes. Func is the two-part form: a function
// registered together with an opaque data value that is passed back on
// every call. Handler is a capability that bundles its own state; Of
// turns it into a Func. A nil Func is the disabled sentinel: the
// dispatcher checks for it before formatting anything.
//
// The dispatcher serializes handler calls, so a handler body never runs
// concurrently with another handler call. A handler that blocks stalls
// every caller of the facility; handlers are expected to return quickly.
//
// Implementations live in sub-packages:
//
//   - consolehandler writes a formatted line to stdout, or to stderr for
//     ERROR, CRITICAL and WARNING. It is the built-in default.
//   - zaphandler, zerologhandler, logrushandler and sloghandler forward
//     messages into an application's existing logger.
//   - metricshandler counts messages in Prometheus before passing them on.
//
// Stats tracks per-level processed and failed write counts for handlers
// that produce output.
package handler
