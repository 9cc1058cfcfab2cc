package memfs

import (
	"context"
	iofs "io/fs"

	"github.com/go-git/go-billy/v5/util"
)

// Mkdir implements fspath.MkdirFS.
func (f *FS) Mkdir(_ context.Context, name string) error {
	if _, err := f.bfs.Lstat(name); err == nil {
		return &iofs.PathError{Op: "mkdir", Path: name, Err: iofs.ErrExist}
	}
	if err := f.checkParent("mkdir", name); err != nil {
		return err
	}
	return pathError("mkdir", name, f.bfs.MkdirAll(name, 0755))
}

// MkdirAll implements fspath.MkdirAllFS.
func (f *FS) MkdirAll(_ context.Context, name string) error {
	if info, err := f.bfs.Stat(name); err == nil && !info.IsDir() {
		return &iofs.PathError{Op: "mkdir", Path: name, Err: errNotDir}
	}
	return pathError("mkdir", name, f.bfs.MkdirAll(name, 0755))
}

// TempDir implements fspath.TempDirFS.
// Temporary directories are created below /tmp.
func (f *FS) TempDir(_ context.Context, prefix string) (string, error) {
	if err := f.bfs.MkdirAll("/tmp", 0755); err != nil {
		return "", pathError("tempdir", "/tmp", err)
	}
	dir, err := util.TempDir(f.bfs, "/tmp", prefix+"-")
	return dir, pathError("tempdir", prefix, err)
}
