// Package osfs implements the lesiw.io/fspath surfaces using the os package.
//
// All names passed to an FS are absolute, slash-separated paths of the local
// filesystem. The working directory is the one of the process, so changing
// it affects every goroutine.
//
// # Context Handling
//
// The lesiw.io/fspath package passes a context.Context to every operation.
// Since osfs uses the local os package, context cancelation does not apply
// and all context parameters are ignored.
package osfs

import (
	"context"
	"io"
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"
)

// FS implements the lesiw.io/fspath surfaces using the OS filesystem.
type FS struct{}

// New returns the OS filesystem.
func New() *FS { return &FS{} }

// Open implements fspath.FS.
func (*FS) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Create implements fspath.CreateFS.
func (*FS) Create(_ context.Context, name string) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
}

// Append implements fspath.AppendFS.
func (*FS) Append(_ context.Context, name string) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
}

// Stat implements fspath.StatFS.
func (*FS) Stat(_ context.Context, name string) (iofs.FileInfo, error) {
	return os.Stat(name)
}

// Lstat implements fspath.ReadLinkFS.
func (*FS) Lstat(_ context.Context, name string) (iofs.FileInfo, error) {
	return os.Lstat(name)
}

// ReadLink implements fspath.ReadLinkFS.
func (*FS) ReadLink(_ context.Context, name string) (string, error) {
	return os.Readlink(name)
}

// Symlink implements fspath.SymlinkFS.
func (*FS) Symlink(_ context.Context, oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

// EvalSymlinks implements fspath.EvalSymlinksFS.
func (*FS) EvalSymlinks(_ context.Context, name string) (string, error) {
	return filepath.EvalSymlinks(name)
}

// ReadDir implements fspath.ReadDirFS. Entries are sorted by name.
func (*FS) ReadDir(
	_ context.Context, name string,
) iter.Seq2[iofs.DirEntry, error] {
	return func(yield func(iofs.DirEntry, error) bool) {
		entries, err := os.ReadDir(name)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, entry := range entries {
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Glob implements fspath.GlobFS.
func (*FS) Glob(_ context.Context, pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// Mkdir implements fspath.MkdirFS.
func (*FS) Mkdir(_ context.Context, name string) error {
	return os.Mkdir(name, 0755)
}

// MkdirAll implements fspath.MkdirAllFS.
func (*FS) MkdirAll(_ context.Context, name string) error {
	return os.MkdirAll(name, 0755)
}

// Remove implements fspath.RemoveFS.
func (*FS) Remove(_ context.Context, name string) error {
	return os.Remove(name)
}

// RemoveAll implements fspath.RemoveAllFS.
func (*FS) RemoveAll(_ context.Context, name string) error {
	return os.RemoveAll(name)
}

// Getwd implements fspath.WorkDirFS.
func (*FS) Getwd(context.Context) (string, error) {
	return os.Getwd()
}

// Chdir implements fspath.WorkDirFS.
func (*FS) Chdir(_ context.Context, name string) error {
	return os.Chdir(name)
}

// Home implements fspath.HomeFS.
func (*FS) Home(context.Context) (string, error) {
	return os.UserHomeDir()
}

// TempDir implements fspath.TempDirFS.
func (*FS) TempDir(_ context.Context, prefix string) (string, error) {
	return os.MkdirTemp("", prefix+"-*")
}
