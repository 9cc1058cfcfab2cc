// Package memfs implements the lesiw.io/fspath surfaces in memory.
//
// The file tree is stored in a go-billy in-memory filesystem. Unlike the
// operating system, an FS has its own working and home directories, so tests
// can change them without affecting each other.
//
// Symbolic links are supported, but like in go-billy, only the last
// component of a name is followed. Use fspath.EvalSymlinks to resolve
// links in intermediate directories.
package memfs

import (
	"context"
	"io"
	iofs "io/fs"
	"sync"

	"github.com/go-git/go-billy/v5"
	bmemfs "github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// FS is an in-memory filesystem.
type FS struct {
	bfs billy.Filesystem

	mu   sync.RWMutex
	wd   string
	home string
}

// Option configures an FS.
type Option func(*config)

type config struct {
	wd    string
	home  string
	files map[string][]byte
}

// WithWorkDir sets the initial working directory. It is created if it does
// not exist. The default is "/".
func WithWorkDir(dir string) Option {
	return func(c *config) { c.wd = dir }
}

// WithHome sets the home directory. It is created if it does not exist.
// The default is "/home".
func WithHome(dir string) Option {
	return func(c *config) { c.home = dir }
}

// WithFile adds a file with the given contents.
// Missing parent directories are created.
func WithFile(name string, data []byte) Option {
	return func(c *config) { c.files[name] = data }
}

// New returns a new in-memory filesystem.
//
// It panics if the initial directories or files cannot be created.
func New(opts ...Option) *FS {
	cfg := config{wd: "/", home: "/home", files: make(map[string][]byte)}
	for _, opt := range opts {
		opt(&cfg)
	}
	f := &FS{bfs: bmemfs.New(), wd: cfg.wd, home: cfg.home}
	for _, dir := range []string{cfg.wd, cfg.home} {
		if err := f.bfs.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}
	for name, data := range cfg.files {
		if err := util.WriteFile(f.bfs, name, data, 0644); err != nil {
			panic(err)
		}
	}
	return f
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Open implements fspath.FS.
func (f *FS) Open(_ context.Context, name string) (io.ReadCloser, error) {
	info, err := f.bfs.Stat(name)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	if info.IsDir() {
		return nil, &iofs.PathError{Op: "open", Path: name, Err: errIsDir}
	}
	r, err := f.bfs.Open(name)
	return r, pathError("open", name, err)
}

// Getwd implements fspath.WorkDirFS.
func (f *FS) Getwd(context.Context) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.wd, nil
}

// Chdir implements fspath.WorkDirFS.
func (f *FS) Chdir(_ context.Context, name string) error {
	info, err := f.bfs.Stat(name)
	if err != nil {
		return pathError("chdir", name, err)
	}
	if !info.IsDir() {
		return &iofs.PathError{Op: "chdir", Path: name, Err: errNotDir}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wd = name
	return nil
}

// Home implements fspath.HomeFS.
func (f *FS) Home(context.Context) (string, error) {
	return f.home, nil
}
