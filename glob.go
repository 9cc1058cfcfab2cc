package fspath

import (
	"context"
	"errors"
	"slices"

	"lesiw.io/fspath/path"
)

// A GlobFS is a file system with the Glob method.
//
// If not implemented, Glob falls back to pattern matching using
// StatFS and ReadDirFS.
type GlobFS interface {
	FS

	// Glob returns the names of all files matching pattern.
	// The pattern syntax is the same as in [path.Match].
	Glob(ctx context.Context, pattern string) ([]string, error)
}

// Glob returns the names of all files matching pattern.
// Analogous to: [path/filepath.Glob], glob.
//
// The pattern is an absolute name whose segments may contain the syntax of
// [path.Match], such as /usr/*/bin/ed.
//
// Glob ignores file system errors such as I/O errors reading directories.
// The only possible returned error is [path.ErrBadPattern], reporting that
// the pattern is malformed.
//
// Requires: [GlobFS] || ([StatFS] && [ReadDirFS])
func Glob(ctx context.Context, fsys FS, pattern string) ([]string, error) {
	segs := path.Normalize(path.Split(pattern))
	for _, s := range segs {
		if _, err := path.Match(s, ""); err != nil {
			return nil, err
		}
	}
	if gfs, ok := fsys.(GlobFS); ok {
		matches, err := gfs.Glob(ctx, pattern)
		if !errors.Is(err, ErrUnsupported) {
			return matches, err
		}
	}

	_, hasStat := fsys.(StatFS)
	_, hasReadDir := fsys.(ReadDirFS)
	if !hasStat || !hasReadDir {
		return nil, &PathError{Op: "glob", Path: pattern, Err: ErrUnsupported}
	}

	return glob(ctx, fsys, nil, segs, nil), nil
}

// glob appends to matches the names below prefix that match the remaining
// pattern segments.
func glob(
	ctx context.Context, fsys FS, prefix, pattern, matches []string,
) []string {
	if len(pattern) == 0 {
		return append(matches, path.JoinAbs(prefix))
	}
	seg := pattern[0]
	if !path.HasMeta(seg) {
		next := append(slices.Clone(prefix), seg)
		if _, err := Lstat(ctx, fsys, path.JoinAbs(next)); err != nil {
			return matches
		}
		return glob(ctx, fsys, next, pattern[1:], matches)
	}
	for entry, err := range ReadDir(ctx, fsys, path.JoinAbs(prefix)) {
		if err != nil {
			return matches // ignore I/O error
		}
		if ok, _ := path.Match(seg, entry.Name()); ok {
			next := append(slices.Clone(prefix), entry.Name())
			matches = glob(ctx, fsys, next, pattern[1:], matches)
		}
	}
	return matches
}
