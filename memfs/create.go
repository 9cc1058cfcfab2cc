package memfs

import (
	"context"
	"io"
	iofs "io/fs"
	"os"
	"path"
)

// Create implements fspath.CreateFS.
func (f *FS) Create(_ context.Context, name string) (io.WriteCloser, error) {
	if err := f.checkParent("create", name); err != nil {
		return nil, err
	}
	if info, err := f.bfs.Stat(name); err == nil && info.IsDir() {
		return nil, &iofs.PathError{Op: "create", Path: name, Err: errIsDir}
	}
	w, err := f.bfs.Create(name)
	return w, pathError("create", name, err)
}

// checkParent returns an error if the parent of name is not a directory.
// go-billy creates missing parents implicitly, the OS does not.
func (f *FS) checkParent(op, name string) error {
	info, err := f.bfs.Stat(path.Dir(name))
	if err != nil {
		return pathError(op, name, err)
	}
	if !info.IsDir() {
		return &iofs.PathError{Op: op, Path: name, Err: errNotDir}
	}
	return nil
}

// Append implements fspath.AppendFS.
func (f *FS) Append(_ context.Context, name string) (io.WriteCloser, error) {
	if err := f.checkParent("append", name); err != nil {
		return nil, err
	}
	w, err := f.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	return w, pathError("append", name, err)
}
