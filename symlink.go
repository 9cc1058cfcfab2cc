package fspath

import (
	"context"
	"errors"
	"slices"
	"syscall"

	"lesiw.io/fspath/path"
)

// A SymlinkFS is a file system with the Symlink method.
type SymlinkFS interface {
	FS

	// Symlink creates newname as a symbolic link to oldname.
	Symlink(ctx context.Context, oldname, newname string) error
}

// A ReadLinkFS is a file system with the ReadLink and Lstat methods.
type ReadLinkFS interface {
	FS

	// ReadLink returns the destination of the named symbolic link.
	// If the link destination is relative, ReadLink returns the relative
	// path without resolving it to an absolute one.
	ReadLink(ctx context.Context, name string) (string, error)

	// Lstat returns FileInfo describing the named file.
	// If the file is a symbolic link, the returned FileInfo
	// describes the symbolic link. Lstat makes no attempt to follow
	// the link.
	Lstat(ctx context.Context, name string) (FileInfo, error)
}

// An EvalSymlinksFS is a file system that resolves symbolic links natively.
//
// If not implemented, or if EvalSymlinks returns ErrUnsupported,
// [EvalSymlinks] walks the path itself using ReadLinkFS.
type EvalSymlinksFS interface {
	FS

	// EvalSymlinks returns the named path with all symbolic links
	// resolved.
	EvalSymlinks(ctx context.Context, name string) (string, error)
}

// Symlink creates newname as a symbolic link to oldname.
// Analogous to: [os.Symlink], ln -s.
//
// Requires: [SymlinkFS]
func Symlink(ctx context.Context, fsys FS, oldname, newname string) error {
	if sfs, ok := fsys.(SymlinkFS); ok {
		err := sfs.Symlink(ctx, oldname, newname)
		if !errors.Is(err, ErrUnsupported) {
			return newPathError("symlink", newname, err)
		}
	}
	return &PathError{Op: "symlink", Path: newname, Err: ErrUnsupported}
}

// ReadLink returns the destination of the named symbolic link.
// Analogous to: [os.Readlink], readlink.
//
// Requires: [ReadLinkFS]
func ReadLink(ctx context.Context, fsys FS, name string) (string, error) {
	if rfs, ok := fsys.(ReadLinkFS); ok {
		dest, err := rfs.ReadLink(ctx, name)
		return dest, newPathError("readlink", name, err)
	}
	return "", &PathError{Op: "readlink", Path: name, Err: ErrUnsupported}
}

// Lstat returns FileInfo describing the named file without following
// symbolic links. Analogous to: [os.Lstat].
//
// Requires: [ReadLinkFS] || [StatFS]
func Lstat(ctx context.Context, fsys FS, name string) (FileInfo, error) {
	if rfs, ok := fsys.(ReadLinkFS); ok {
		info, err := rfs.Lstat(ctx, name)
		return info, newPathError("lstat", name, err)
	}
	return Stat(ctx, fsys, name)
}

// maxLinks is the number of symbolic links EvalSymlinks follows
// before giving up.
const maxLinks = 255

// EvalSymlinks returns the absolute location of p with all symbolic links
// resolved. Analogous to: [path/filepath.EvalSymlinks], realpath.
//
// Components that do not exist are kept as they are. A ".." above the root
// refers to the root. Relative link destinations are resolved against the
// directory containing the link.
//
// Requires: [EvalSymlinksFS] || [ReadLinkFS]
func EvalSymlinks(ctx context.Context, fsys FS, p Pather) (AnyPath, error) {
	name := p.AbsoluteString()
	if efs, ok := fsys.(EvalSymlinksFS); ok {
		resolved, err := efs.EvalSymlinks(ctx, name)
		switch {
		case err == nil:
			return Abs[AnyKind](path.Split(resolved)...), nil
		case errors.Is(err, ErrUnsupported), errors.Is(err, ErrNotExist),
			errors.Is(err, syscall.ENOTDIR):
			// The walk below keeps missing components unchanged.
		default:
			return AnyPath{}, newPathError("evalsymlinks", name, err)
		}
	}
	if _, ok := fsys.(ReadLinkFS); !ok {
		return AnyPath{}, &PathError{
			Op: "evalsymlinks", Path: name, Err: ErrUnsupported,
		}
	}
	segs, err := evalSymlinks(ctx, fsys, p.AbsoluteSegments())
	if err != nil {
		return AnyPath{}, newPathError("evalsymlinks", name, err)
	}
	return Abs[AnyKind](segs...), nil
}

func evalSymlinks(
	ctx context.Context, fsys FS, rest []string,
) ([]string, error) {
	var done []string
	links := 0
	for {
		rest = trimParentDirs(rest)
		if len(rest) == 0 {
			return done, nil
		}
		cur := append(slices.Clone(done), rest[0])
		name := path.JoinAbs(cur)
		info, err := Lstat(ctx, fsys, name)
		if errors.Is(err, ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return append(cur, rest[1:]...), nil
		} else if err != nil {
			return nil, err
		}
		if info.Mode()&ModeSymlink == 0 {
			done, rest = cur, rest[1:]
			continue
		}
		if links++; links > maxLinks {
			return nil, errors.New("too many links")
		}
		dest, err := ReadLink(ctx, fsys, name)
		if err != nil {
			return nil, err
		}
		var next []string
		if !path.IsAbs(dest) {
			next = done
		}
		rest = path.Normalize(slices.Concat(next, path.Split(dest), rest[1:]))
		done = nil
	}
}

// trimParentDirs drops leading ".." segments; the parent of the root
// is the root.
func trimParentDirs(segs []string) []string {
	for len(segs) > 0 && segs[0] == path.ParentDir {
		segs = segs[1:]
	}
	return segs
}
