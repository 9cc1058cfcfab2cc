package fspath

import (
	"context"
	"errors"
	"io"
)

// A CreateFS is a file system with the Create method.
type CreateFS interface {
	FS

	// Create creates or truncates the named file for writing.
	// The parent directory must exist.
	//
	// The returned writer must be closed when done.
	Create(ctx context.Context, name string) (io.WriteCloser, error)
}

// Create creates or truncates the named file for writing.
// Analogous to: [os.Create], > redirection.
//
// Requires: [CreateFS]
func Create(
	ctx context.Context, fsys FS, name string,
) (io.WriteCloser, error) {
	if cfs, ok := fsys.(CreateFS); ok {
		w, err := cfs.Create(ctx, name)
		if !errors.Is(err, ErrUnsupported) {
			return w, newPathError("create", name, err)
		}
	}
	return nil, &PathError{Op: "create", Path: name, Err: ErrUnsupported}
}
