// Package core defines the shared types used across domainlog.
//
// It provides the Level type, ordered from most severe (ErrorLevel) to
// least severe (TraceLevel), and the Record type that line-oriented
// handlers build from a dispatched message before formatting it.
//
// Level.String is total: values outside the defined set render as
// "UNKNOWN" rather than panicking, so handlers can print whatever level
// they are given.
//
// The package also hosts a coarse wall clock (StartCoarseClock,
// CoarseNow) that handlers may use instead of time.Now when timestamp
// cost matters more than sub-millisecond accuracy.
package core
