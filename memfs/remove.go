package memfs

import (
	"context"

	"github.com/go-git/go-billy/v5/util"
)

// Remove implements fspath.RemoveFS.
func (f *FS) Remove(_ context.Context, name string) error {
	return pathError("remove", name, f.bfs.Remove(name))
}

// RemoveAll implements fspath.RemoveAllFS.
func (f *FS) RemoveAll(_ context.Context, name string) error {
	return pathError("remove", name, util.RemoveAll(f.bfs, name))
}
