package fspath

import (
	"context"
	"errors"
)

// A MkdirFS is a file system with the Mkdir method.
type MkdirFS interface {
	FS

	// Mkdir creates a new directory.
	//
	// Mkdir returns an error if the directory already exists or if the
	// parent directory does not exist.
	Mkdir(ctx context.Context, name string) error
}

// Mkdir creates a new directory.
// Analogous to: [os.Mkdir], mkdir.
//
// Requires: [MkdirFS]
func Mkdir(ctx context.Context, fsys FS, name string) error {
	if mfs, ok := fsys.(MkdirFS); ok {
		if err := mfs.Mkdir(ctx, name); !errors.Is(err, ErrUnsupported) {
			return newPathError("mkdir", name, err)
		}
	}
	return &PathError{Op: "mkdir", Path: name, Err: ErrUnsupported}
}
