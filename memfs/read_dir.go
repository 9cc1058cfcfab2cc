package memfs

import (
	"context"
	iofs "io/fs"
	"iter"

	"github.com/go-git/go-billy/v5/util"
)

// ReadDir implements fspath.ReadDirFS. Entries are sorted by name.
func (f *FS) ReadDir(
	_ context.Context, name string,
) iter.Seq2[iofs.DirEntry, error] {
	return func(yield func(iofs.DirEntry, error) bool) {
		info, err := f.bfs.Stat(name)
		if err != nil {
			yield(nil, pathError("readdir", name, err))
			return
		}
		if !info.IsDir() {
			yield(nil, &iofs.PathError{
				Op: "readdir", Path: name, Err: errNotDir,
			})
			return
		}
		infos, err := f.bfs.ReadDir(name)
		if err != nil {
			yield(nil, pathError("readdir", name, err))
			return
		}
		for _, info := range infos {
			if !yield(iofs.FileInfoToDirEntry(info), nil) {
				return
			}
		}
	}
}

// Glob implements fspath.GlobFS.
func (f *FS) Glob(_ context.Context, pattern string) ([]string, error) {
	return util.Glob(f.bfs, pattern)
}
