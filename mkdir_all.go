package fspath

import (
	"context"
	"errors"

	"lesiw.io/fspath/path"
)

// A MkdirAllFS is a file system with the MkdirAll method.
//
// If not implemented, MkdirAll falls back to recursive creation using
// MkdirFS and StatFS.
type MkdirAllFS interface {
	FS

	// MkdirAll creates a directory named name, along with any necessary
	// parents. If name is already a directory, MkdirAll does nothing and
	// returns nil.
	MkdirAll(ctx context.Context, name string) error
}

// MkdirAll creates a directory named name, along with any necessary parents.
// Analogous to: [os.MkdirAll], mkdir -p.
//
// If name is already a directory, MkdirAll does nothing and returns nil.
//
// Requires: [MkdirAllFS] || ([MkdirFS] && [StatFS])
func MkdirAll(ctx context.Context, fsys FS, name string) error {
	if mafs, ok := fsys.(MkdirAllFS); ok {
		err := mafs.MkdirAll(ctx, name)
		if !errors.Is(err, ErrUnsupported) {
			return newPathError("mkdir", name, err)
		}
	}
	return mkdirAll(ctx, fsys, path.Normalize(path.Split(name)))
}

func mkdirAll(ctx context.Context, fsys FS, segs []string) error {
	name := path.JoinAbs(segs)
	mfs, hasMkdir := fsys.(MkdirFS)
	_, hasStat := fsys.(StatFS)
	if !hasMkdir || !hasStat {
		return &PathError{Op: "mkdir", Path: name, Err: ErrUnsupported}
	}

	info, err := Stat(ctx, fsys, name)
	if err == nil {
		if info.IsDir() {
			return nil
		}
		return &PathError{Op: "mkdir", Path: name, Err: ErrNotDir}
	}
	if len(segs) == 0 {
		return err
	}
	if err := mkdirAll(ctx, fsys, segs[:len(segs)-1]); err != nil {
		return err
	}
	if err := mfs.Mkdir(ctx, name); err != nil && !errors.Is(err, ErrExist) {
		return newPathError("mkdir", name, err)
	}
	return nil
}
