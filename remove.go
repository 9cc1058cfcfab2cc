package fspath

import (
	"context"
	"errors"
)

// A RemoveFS is a file system with the Remove method.
type RemoveFS interface {
	FS

	// Remove removes the named file, symbolic link or empty directory.
	Remove(ctx context.Context, name string) error
}

// Remove removes the named file, symbolic link or empty directory.
// Analogous to: [os.Remove], rm, rmdir.
//
// Requires: [RemoveFS]
func Remove(ctx context.Context, fsys FS, name string) error {
	if rfs, ok := fsys.(RemoveFS); ok {
		if err := rfs.Remove(ctx, name); !errors.Is(err, ErrUnsupported) {
			return newPathError("remove", name, err)
		}
	}
	return &PathError{Op: "remove", Path: name, Err: ErrUnsupported}
}
