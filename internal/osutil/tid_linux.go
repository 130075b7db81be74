//go:build linux

package osutil

import "golang.org/x/sys/unix"

// ThreadID returns the kernel id of the OS thread running the caller.
func ThreadID() int {
	return unix.Gettid()
}
