package memfs

import "context"

// Symlink implements fspath.SymlinkFS.
func (f *FS) Symlink(_ context.Context, oldname, newname string) error {
	if err := f.checkParent("symlink", newname); err != nil {
		return err
	}
	return pathError("symlink", newname, f.bfs.Symlink(oldname, newname))
}

// ReadLink implements fspath.ReadLinkFS.
func (f *FS) ReadLink(_ context.Context, name string) (string, error) {
	dest, err := f.bfs.Readlink(name)
	return dest, pathError("readlink", name, err)
}
