//go:build !linux

package osutil

import "os"

// ThreadID returns the process id; only Linux exposes a cheap per-thread id.
func ThreadID() int {
	return os.Getpid()
}
