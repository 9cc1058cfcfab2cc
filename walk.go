package fspath

import (
	"cmp"
	"context"
	"iter"
	"slices"
	"strings"

	"lesiw.io/fspath/path"
)

// A ReadDirFS is a file system with the ReadDir method.
type ReadDirFS interface {
	FS

	// ReadDir reads the directory and returns an iterator over its entries.
	// Entries describe the items themselves, not what symbolic links
	// point to.
	ReadDir(ctx context.Context, name string) iter.Seq2[DirEntry, error]
}

// ReadDir reads the named directory and returns an iterator over its
// entries. Analogous to: [os.ReadDir], ls.
//
// Requires: [ReadDirFS]
func ReadDir(
	ctx context.Context, fsys FS, name string,
) iter.Seq2[DirEntry, error] {
	if rdfs, ok := fsys.(ReadDirFS); ok {
		return rdfs.ReadDir(ctx, name)
	}
	return func(yield func(DirEntry, error) bool) {
		yield(nil, &PathError{Op: "readdir", Path: name, Err: ErrUnsupported})
	}
}

// A WalkEntry is a directory entry found by [Walk].
type WalkEntry struct {
	DirEntry

	// Path is the absolute name of the entry.
	Path string

	// Depth is 1 for entries of the root directory, 2 for entries of its
	// subdirectories, and so on.
	Depth int
}

// Walk traverses the directory tree rooted at root, breadth first.
// Analogous to: [io/fs.WalkDir], find.
//
// The depth parameter controls how deep to traverse (like find -maxdepth):
//   - depth <= 0: unlimited depth
//   - depth >= 1: root directory plus n-1 levels of subdirectories
//
// Entries of each directory are yielded in lexical order. Symbolic links
// are yielded but not followed.
//
// If an error occurs reading a directory, the iteration yields a zero
// WalkEntry and the error. The caller can choose to continue iterating
// (skip that directory) or break to stop the walk.
//
// Requires: [ReadDirFS]
func Walk(
	ctx context.Context, fsys FS, root string, depth int,
) iter.Seq2[WalkEntry, error] {
	return func(yield func(WalkEntry, error) bool) {
		type item struct {
			name  string
			depth int
		}
		queue := []item{{root, 0}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			var entries []DirEntry
			for entry, err := range ReadDir(ctx, fsys, cur.name) {
				if err != nil {
					if !yield(WalkEntry{}, err) {
						return
					}
					break
				}
				entries = append(entries, entry)
			}
			slices.SortFunc(entries, func(a, b DirEntry) int {
				return cmp.Compare(a.Name(), b.Name())
			})

			prefix := strings.TrimSuffix(cur.name, path.Separator) +
				path.Separator
			for _, entry := range entries {
				we := WalkEntry{
					DirEntry: entry,
					Path:     prefix + entry.Name(),
					Depth:    cur.depth + 1,
				}
				if !yield(we, nil) {
					return
				}
				if entry.IsDir() && (depth <= 0 || we.Depth < depth) {
					queue = append(queue, item{we.Path, we.Depth})
				}
			}
		}
	}
}
