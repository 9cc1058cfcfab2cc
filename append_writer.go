package fspath

import (
	"context"
	"errors"
	"io"
)

// An AppendFS is a file system with the Append method.
type AppendFS interface {
	FS

	// Append opens the named file for appending. Writes are added to the
	// end of the file. If the file does not exist, it is created.
	//
	// The returned writer must be closed when done.
	Append(ctx context.Context, name string) (io.WriteCloser, error)
}

// OpenAppend opens the named file for appending.
// Analogous to: [os.OpenFile] with O_APPEND, >> redirection.
//
// Requires: [AppendFS]
func OpenAppend(
	ctx context.Context, fsys FS, name string,
) (io.WriteCloser, error) {
	if afs, ok := fsys.(AppendFS); ok {
		w, err := afs.Append(ctx, name)
		if !errors.Is(err, ErrUnsupported) {
			return w, newPathError("append", name, err)
		}
	}
	return nil, &PathError{Op: "append", Path: name, Err: ErrUnsupported}
}
