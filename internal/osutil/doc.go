// Package osutil wraps the platform-specific identifiers the console
// handler prints next to each line.
package osutil
