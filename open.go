package fspath

import (
	"context"
	"io"
)

// Open opens the named file for reading.
// Analogous to: [os.Open], cat.
//
// The returned [io.ReadCloser] must be closed when done.
//
// Requires: [FS]
func Open(ctx context.Context, fsys FS, name string) (io.ReadCloser, error) {
	r, err := fsys.Open(ctx, name)
	return r, newPathError("open", name, err)
}
