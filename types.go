// Package fspath provides typed paths and file and directory handles for the
// local POSIX filesystem.
//
// A [Path] knows at the type level whether it denotes a directory
// ([DirPath]), something that is not a directory ([FilePath]), or an item of
// unknown type ([AnyPath]). A path is either absolute, or it remembers the
// base directory it was created relative to:
//
//	p, _ := fspath.Parse[fspath.FileKind](ctx, "src/main.go")
//	p.String()         // "src/main.go"
//	p.AbsoluteString() // "/home/u/project/src/main.go"
//	b, _ := p.Base()   // the working directory at the time of Parse
//
// Paths are immutable values. Every constructor normalizes its input: empty
// and "." segments are dropped, and a segment followed by ".." is removed
// together with it. A ".." with nothing left to cancel is kept, so that
// "/../a" stays distinguishable from "/a". See the [lesiw.io/fspath/path]
// subpackage for the lexical rules.
//
// # Environment
//
// Relative paths are resolved against the working directory, "~" against the
// home directory. Both are read through an [Env], which wraps an [FS]
// providing the operating system queries, and which also holds the sandbox
// flag. The Env is carried by the context:
//
//	env := fspath.NewEnv(memfs.New(memfs.WithWorkDir("/work")))
//	ctx = fspath.WithEnv(ctx, env)
//
// Without an Env in the context, [Default] is used. It is backed by the
// [lesiw.io/fspath/osfs] package.
//
// # Sandbox
//
// While the sandbox is enabled, every operation that changes the filesystem
// first calls [VerifyInSandbox]. The operation only proceeds if the path, or
// the path with all symbolic links resolved, is strictly below the current
// working directory. This is a cooperative pre-flight check, not an
// enforcement mechanism: another process may change the filesystem between
// the check and the operation.
//
// # Optional Interfaces
//
// The core [FS] interface only requires Open. Everything else is discovered
// through type assertions:
//
//   - [AccessFS] - Readable/writable checks
//   - [AppendFS] - Open files for appending
//   - [CreateFS] - Create or truncate files for writing
//   - [EvalSymlinksFS] - Native symbolic link resolution
//   - [GlobFS] - Pattern-based file matching
//   - [HomeFS] - Home directory
//   - [MkdirAllFS] - Create directories and their parents
//   - [MkdirFS] - Create a single directory
//   - [ReadDirFS] - List directory contents
//   - [ReadLinkFS] - Read symlink targets and stat without following
//   - [RemoveAllFS] - Recursively delete
//   - [RemoveFS] - Delete a file or empty directory
//   - [StatFS] - Query file metadata
//   - [SymlinkFS] - Create symbolic links
//   - [TempDirFS] - Create temporary directories
//   - [WorkDirFS] - Query and change the working directory
//
// Helper functions check capabilities automatically and return
// [ErrUnsupported] when an operation isn't available. All names passed to an
// FS are absolute, slash-separated paths.
package fspath

import (
	"context"
	"errors"
	"io"
	"io/fs"
)

// An FS is a file system with the Open method.
type FS interface {
	// Open opens the named file for reading.
	//
	// The returned reader must be closed when done.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// DirEntry describes a directory entry.
type DirEntry = fs.DirEntry

// A FileInfo describes a file and is returned by [Stat].
type FileInfo = fs.FileInfo

// A Mode represents a file's mode and permission bits.
type Mode = fs.FileMode

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError

// newPathError creates a PathError if err is not nil, otherwise returns nil.
// Errors that already are a *PathError are returned unchanged.
func newPathError(op, name string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*PathError); ok {
		return err
	}
	return &PathError{Op: op, Path: name, Err: err}
}

// Generic file system errors.
var (
	ErrInvalid     = fs.ErrInvalid
	ErrPermission  = fs.ErrPermission
	ErrExist       = fs.ErrExist
	ErrNotExist    = fs.ErrNotExist
	ErrClosed      = fs.ErrClosed
	ErrUnsupported = errors.ErrUnsupported
)

// Valid values for [Mode].
const (
	ModeDir        = fs.ModeDir
	ModeSymlink    = fs.ModeSymlink
	ModeDevice     = fs.ModeDevice
	ModeCharDevice = fs.ModeCharDevice
	ModeSocket     = fs.ModeSocket
	ModeNamedPipe  = fs.ModeNamedPipe
	ModeType       = fs.ModeType
)
