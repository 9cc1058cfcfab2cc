package fspath

import (
	"context"
	"errors"
)

// An AccessFS is a file system with the Access method.
type AccessFS interface {
	FS

	// Access checks whether the current user may read the named file,
	// or write it if write is true. It returns nil if access is granted.
	Access(ctx context.Context, name string, write bool) error
}

// Access checks whether the named file can be read, or written if write is
// true. Analogous to: access(2), test -r, test -w.
//
// Requires: [AccessFS]
func Access(ctx context.Context, fsys FS, name string, write bool) error {
	if afs, ok := fsys.(AccessFS); ok {
		err := afs.Access(ctx, name, write)
		if !errors.Is(err, ErrUnsupported) {
			return newPathError("access", name, err)
		}
	}
	return &PathError{Op: "access", Path: name, Err: ErrUnsupported}
}

// accessible is like Access, but treats a file system without
// access checks as granting access.
func accessible(ctx context.Context, fsys FS, name string, write bool) bool {
	err := Access(ctx, fsys, name, write)
	return err == nil || errors.Is(err, ErrUnsupported)
}
