// Package consolehandler provides the built-in line-oriented handler.
//
// Console formats each message with a formatter.TextFormatter (or any
// configured Formatter) and writes it to one of two streams: ERROR,
// CRITICAL and WARNING go to Stderr, everything else to Stdout. Each
// line carries a local timestamp with milliseconds and the id of the
// OS thread that logged it.
//
// Default is a ready-made Console on os.Stdout/os.Stderr exposed as a
// handler.Func, for handlers that want to fall back to standard output.
//
// With Color set, level names are coloured only on streams that are
// terminals, so redirected output stays plain.
package consolehandler
