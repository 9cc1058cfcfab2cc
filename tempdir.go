package fspath

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// A TempDirFS is a file system with the TempDir method.
//
// If not implemented, TempDir falls back to creating a directory with a
// random name below /tmp using MkdirAllFS or MkdirFS.
type TempDirFS interface {
	FS

	// TempDir creates a new temporary directory whose name begins with
	// prefix, and returns its absolute name.
	TempDir(ctx context.Context, prefix string) (string, error)
}

// TempDir creates a new temporary directory and returns its absolute name.
// Analogous to: [os.MkdirTemp], mktemp -d.
//
// The caller is responsible for removing the directory when done.
//
// Requires: [TempDirFS] || [MkdirAllFS] || ([MkdirFS] && [StatFS])
func TempDir(ctx context.Context, fsys FS, prefix string) (string, error) {
	if tfs, ok := fsys.(TempDirFS); ok {
		dir, err := tfs.TempDir(ctx, prefix)
		if !errors.Is(err, ErrUnsupported) {
			return dir, newPathError("tempdir", prefix, err)
		}
	}

	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", &PathError{Op: "tempdir", Path: prefix, Err: err}
	}
	if prefix == "" {
		prefix = "tmp"
	}
	dir := "/tmp/" + prefix + "-" + hex.EncodeToString(b[:])
	if err := MkdirAll(ctx, fsys, dir); err != nil {
		return "", err
	}
	return dir, nil
}
