//go:build unix

package osfs

import (
	"context"

	"golang.org/x/sys/unix"
)

// Access implements fspath.AccessFS on Unix systems.
func (*FS) Access(_ context.Context, name string, write bool) error {
	mode := uint32(unix.R_OK)
	if write {
		mode = unix.W_OK
	}
	return unix.Access(name, mode)
}
