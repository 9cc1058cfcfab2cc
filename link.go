package fspath

import (
	"context"
	"errors"
	"slices"

	"go.uber.org/zap"

	"lesiw.io/fspath/path"
)

// SymlinkFile creates a symbolic link at link pointing to target,
// and opens it.
//
// If an item already exists at link and ifExists is [ExistsOpen], it must
// be a symbolic link to target, or SymlinkFile fails with ErrPermission.
func SymlinkFile(
	ctx context.Context, link FilePath, target *File, ifExists IfExists,
) (*File, error) {
	if err := symlink(ctx, link, target.path, ifExists); err != nil {
		return nil, err
	}
	return OpenFile(ctx, link)
}

// SymlinkDir creates a symbolic link at link pointing to target,
// and opens it. See [SymlinkFile].
func SymlinkDir(
	ctx context.Context, link DirPath, target *Dir, ifExists IfExists,
) (*Dir, error) {
	if err := symlink(ctx, link, target.path, ifExists); err != nil {
		return nil, err
	}
	return OpenDir(ctx, link)
}

func symlink[K Kinder](
	ctx context.Context, link Path[K], target Pather, ifExists IfExists,
) error {
	env := EnvFrom(ctx)
	name := link.AbsoluteString()
	_, err := Lstat(ctx, env.fsys, name)
	switch {
	case err == nil:
		isDir := false
		if info, err := Stat(ctx, env.fsys, name); err == nil {
			isDir = info.IsDir()
		}
		if wantDir := link.Kind() == KindDir; isDir && !wantDir {
			return &OpError{Op: "symlink", Path: link, Err: ErrIsDir}
		} else if !isDir && wantDir {
			return &OpError{Op: "symlink", Path: link, Err: ErrNotDir}
		}
		switch ifExists {
		case ExistsFail:
			return &OpError{Op: "symlink", Path: link, Err: ErrExist}
		case ExistsOpen:
			dest, err := ReadLink(ctx, env.fsys, name)
			if err != nil {
				return &OpError{Op: "symlink", Path: link, Err: err}
			}
			if !slices.Equal(
				linkTarget(link, dest), target.AbsoluteSegments(),
			) {
				return &OpError{Op: "symlink", Path: link, Err: ErrPermission}
			}
			return nil
		}
		if err := env.VerifyInSandbox(ctx, link); err != nil {
			return err
		}
		if err := RemoveAll(ctx, env.fsys, name); err != nil {
			return &OpError{Op: "symlink", Path: link, Err: err}
		}
	case !errors.Is(err, ErrNotExist):
		return &OpError{Op: "symlink", Path: link, Err: err}
	}
	if err := env.VerifyInSandbox(ctx, link); err != nil {
		return err
	}
	dest := target.AbsoluteString()
	if err := Symlink(ctx, env.fsys, dest, name); err != nil {
		return &OpError{
			Op: "symlink", Path: link,
			Err: errors.Join(ErrCouldNotCreate, err),
		}
	}
	Logger().Debug("created symbolic link",
		zap.String("path", name),
		zap.String("target", dest),
	)
	return nil
}

// linkTarget returns the absolute segments of the destination of a link.
// Relative destinations are resolved against the directory of the link.
func linkTarget(link Pather, dest string) []string {
	if path.IsAbs(dest) {
		return path.Normalize(path.Split(dest))
	}
	dir := link.AbsoluteSegments()
	dir = dir[:max(0, len(dir)-1)]
	return path.Normalize(slices.Concat(dir, path.Split(dest)))
}
