package memfs

import (
	"context"
	iofs "io/fs"
)

// Stat implements fspath.StatFS.
func (f *FS) Stat(_ context.Context, name string) (iofs.FileInfo, error) {
	info, err := f.bfs.Stat(name)
	return info, pathError("stat", name, err)
}

// Lstat implements fspath.ReadLinkFS.
func (f *FS) Lstat(_ context.Context, name string) (iofs.FileInfo, error) {
	info, err := f.bfs.Lstat(name)
	return info, pathError("lstat", name, err)
}

// Access implements fspath.AccessFS using the owner permission bits.
func (f *FS) Access(_ context.Context, name string, write bool) error {
	info, err := f.bfs.Stat(name)
	if err != nil {
		return pathError("access", name, err)
	}
	perm := iofs.FileMode(0400)
	if write {
		perm = 0200
	}
	if info.Mode().Perm()&perm == 0 {
		return &iofs.PathError{
			Op: "access", Path: name, Err: iofs.ErrPermission,
		}
	}
	return nil
}
