package fspath

import (
	"context"
	"errors"
	"slices"
	"strings"

	"go.uber.org/zap"

	"lesiw.io/fspath/path"
)

// IfExists selects what creating an item does when one already exists.
type IfExists int

const (
	// ExistsOpen opens the existing item.
	ExistsOpen IfExists = iota
	// ExistsFail fails with ErrExist.
	ExistsFail
	// ExistsReplace deletes the existing item and creates a new one.
	ExistsReplace
)

func (e IfExists) String() string {
	switch e {
	case ExistsFail:
		return "fail"
	case ExistsReplace:
		return "replace"
	}
	return "open"
}

// A Dir is a readable directory.
type Dir struct {
	path DirPath
	env  *Env
}

// A WritableDir is a directory that can be changed.
type WritableDir struct {
	Dir
}

// OpenDir opens the existing directory at p for reading.
func OpenDir(ctx context.Context, p DirPath) (*Dir, error) {
	env := EnvFrom(ctx)
	if err := checkDir(ctx, env, "open", p, false); err != nil {
		return nil, err
	}
	return &Dir{path: p, env: env}, nil
}

// OpenWritableDir opens the existing directory at p for writing.
func OpenWritableDir(ctx context.Context, p DirPath) (*WritableDir, error) {
	env := EnvFrom(ctx)
	if err := env.VerifyInSandbox(ctx, p); err != nil {
		return nil, err
	}
	if err := checkDir(ctx, env, "open", p, true); err != nil {
		return nil, err
	}
	return &WritableDir{Dir{path: p, env: env}}, nil
}

func checkDir(
	ctx context.Context, env *Env, op string, p DirPath, write bool,
) error {
	name := p.AbsoluteString()
	info, err := Stat(ctx, env.fsys, name)
	switch {
	case errors.Is(err, ErrNotExist):
		return &OpError{Op: op, Path: p, Err: ErrNotExist}
	case err != nil:
		return &OpError{Op: op, Path: p, Err: err}
	case !info.IsDir():
		return &OpError{Op: op, Path: p, Err: ErrNotDir}
	case !accessible(ctx, env.fsys, name, write):
		return &OpError{Op: op, Path: p, Err: ErrPermission}
	}
	return nil
}

// CreateDir creates the directory at p, along with any missing parents.
func CreateDir(
	ctx context.Context, p DirPath, ifExists IfExists,
) (*WritableDir, error) {
	env := EnvFrom(ctx)
	name := p.AbsoluteString()
	info, err := Stat(ctx, env.fsys, name)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, &OpError{Op: "create", Path: p, Err: ErrNotDir}
		}
		switch ifExists {
		case ExistsFail:
			return nil, &OpError{Op: "create", Path: p, Err: ErrExist}
		case ExistsOpen:
			return OpenWritableDir(ctx, p)
		}
		if err := env.VerifyInSandbox(ctx, p); err != nil {
			return nil, err
		}
		if err := RemoveAll(ctx, env.fsys, name); err != nil {
			return nil, &OpError{Op: "create", Path: p, Err: err}
		}
	case !errors.Is(err, ErrNotExist):
		return nil, &OpError{Op: "create", Path: p, Err: err}
	}
	if err := env.VerifyInSandbox(ctx, p); err != nil {
		return nil, err
	}
	if err := MkdirAll(ctx, env.fsys, name); err != nil {
		return nil, &OpError{
			Op: "create", Path: p, Err: errors.Join(ErrCouldNotCreate, err),
		}
	}
	Logger().Debug("created directory", zap.String("path", name))
	return &WritableDir{Dir{path: p, env: env}}, nil
}

// CreateTempDir creates a new temporary directory.
//
// The temporary directory is usually outside of the working directory,
// so it is not checked against the sandbox.
func CreateTempDir(ctx context.Context) (*WritableDir, error) {
	env := EnvFrom(ctx)
	name, err := TempDir(ctx, env.fsys, "fspath")
	if err != nil {
		return nil, err
	}
	p, err := absDir("tempdir", name)
	if err != nil {
		return nil, err
	}
	Logger().Debug("created temporary directory", zap.String("path", name))
	return &WritableDir{Dir{path: p, env: env}}, nil
}

// WorkDirHandle opens the current working directory.
func WorkDirHandle(ctx context.Context) (*Dir, error) {
	wd, err := EnvFrom(ctx).WorkDir(ctx)
	if err != nil {
		return nil, err
	}
	return OpenDir(ctx, wd)
}

// HomeHandle opens the home directory of the current user.
func HomeHandle(ctx context.Context) (*Dir, error) {
	home, err := EnvFrom(ctx).Home(ctx)
	if err != nil {
		return nil, err
	}
	return OpenDir(ctx, home)
}

// RootHandle opens the root directory.
func RootHandle(ctx context.Context) (*Dir, error) {
	return OpenDir(ctx, EnvFrom(ctx).Root())
}

// Path returns the path of d.
func (d *Dir) Path() DirPath { return d.path }

func (d *Dir) String() string { return d.path.String() }

// Files returns the files in d whose names match pattern. The paths are
// based on d. If recursive is true, subdirectories are searched as well.
//
// Symbolic links are listed according to what they point to. A subdirectory
// that cannot be read makes a recursive listing fail.
func (d *Dir) Files(
	ctx context.Context, pattern string, recursive bool,
) ([]FilePath, error) {
	return list[FileKind](ctx, d, pattern, recursive)
}

// Dirs returns the subdirectories of d whose names match pattern. The paths
// are based on d. If recursive is true, subdirectories are searched as well.
func (d *Dir) Dirs(
	ctx context.Context, pattern string, recursive bool,
) ([]DirPath, error) {
	return list[DirKind](ctx, d, pattern, recursive)
}

func list[K Kinder](
	ctx context.Context, d *Dir, pattern string, recursive bool,
) ([]Path[K], error) {
	if pattern == "" {
		pattern = "*"
	}
	root := d.path.AbsoluteString()
	dirs := []string{root}
	if recursive {
		for entry, err := range Walk(ctx, d.env.fsys, root, 0) {
			if err != nil {
				return nil, &OpError{Op: "list", Path: d.path, Err: err}
			}
			if entry.IsDir() {
				dirs = append(dirs, entry.Path)
			}
		}
	}

	base := d.path.AbsoluteSegments()
	var out []Path[K]
	for _, dir := range dirs {
		matches, err := Glob(ctx, d.env.fsys,
			strings.TrimSuffix(dir, path.Separator)+path.Separator+pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			info, err := Stat(ctx, d.env.fsys, m)
			if err != nil || info.IsDir() != (kindOf[K]() == KindDir) {
				continue
			}
			segs := path.Normalize(path.Split(m))
			if len(segs) <= len(base) ||
				!slices.Equal(segs[:len(base)], base) {
				continue
			}
			out = append(out, Based[K](base, segs[len(base):]))
		}
	}
	return out, nil
}

// Contains reports whether d has an item with the given relative name.
func (d *Dir) Contains(ctx context.Context, name string) bool {
	p, _ := Append[AnyKind](d.path, name)
	return Exists(ctx, p)
}

// VerifyContains returns an error if d does not contain the named item.
func (d *Dir) VerifyContains(ctx context.Context, name string) error {
	p, _ := Append[AnyKind](d.path, name)
	if !Exists(ctx, p) {
		return &OpError{Op: "open", Path: p, Err: ErrNotExist}
	}
	return nil
}

// OpenFile opens the named file in d for reading.
func (d *Dir) OpenFile(ctx context.Context, name string) (*File, error) {
	p, err := AppendFile(d.path, name)
	if err != nil {
		return nil, err
	}
	return OpenFile(d.context(ctx), p)
}

// EditFile opens the named file in d for reading and writing.
func (d *Dir) EditFile(
	ctx context.Context, name string,
) (*EditableFile, error) {
	p, err := AppendFile(d.path, name)
	if err != nil {
		return nil, err
	}
	return EditFile(d.context(ctx), p)
}

// OpenDir opens the named subdirectory of d for reading.
func (d *Dir) OpenDir(ctx context.Context, name string) (*Dir, error) {
	return OpenDir(d.context(ctx), AppendDir(d.path, name))
}

// context returns ctx carrying the Env d was opened with.
func (d *Dir) context(ctx context.Context) context.Context {
	return WithEnv(ctx, d.env)
}

// OpenDir opens the named subdirectory of d for writing.
func (d *WritableDir) OpenDir(
	ctx context.Context, name string,
) (*WritableDir, error) {
	return OpenWritableDir(d.context(ctx), AppendDir(d.path, name))
}

// CreateFile creates the named file in d. See [CreateFile].
func (d *WritableDir) CreateFile(
	ctx context.Context, name string, ifExists IfExists,
) (*EditableFile, error) {
	p, err := AppendFile(d.path, name)
	if err != nil {
		return nil, err
	}
	return CreateFile(d.context(ctx), p, ifExists)
}

// CreateDir creates the named subdirectory of d. See [CreateDir].
func (d *WritableDir) CreateDir(
	ctx context.Context, name string, ifExists IfExists,
) (*WritableDir, error) {
	return CreateDir(d.context(ctx), AppendDir(d.path, name), ifExists)
}

// CreateSymlinkFile creates the named symbolic link in d pointing to target.
// See [SymlinkFile].
func (d *WritableDir) CreateSymlinkFile(
	ctx context.Context, name string, target *File, ifExists IfExists,
) (*File, error) {
	p, err := AppendFile(d.path, name)
	if err != nil {
		return nil, err
	}
	return SymlinkFile(d.context(ctx), p, target, ifExists)
}

// CreateSymlinkDir creates the named symbolic link in d pointing to target.
// See [SymlinkDir].
func (d *WritableDir) CreateSymlinkDir(
	ctx context.Context, name string, target *Dir, ifExists IfExists,
) (*Dir, error) {
	return SymlinkDir(
		d.context(ctx), AppendDir(d.path, name), target, ifExists,
	)
}

// Delete removes d and everything in it.
func (d *WritableDir) Delete(ctx context.Context) error {
	if err := d.env.VerifyInSandbox(ctx, d.path); err != nil {
		return err
	}
	name := d.path.AbsoluteString()
	if err := RemoveAll(ctx, d.env.fsys, name); err != nil {
		return &OpError{Op: "delete", Path: d.path, Err: err}
	}
	Logger().Debug("deleted directory", zap.String("path", name))
	return nil
}
