package fspath

import (
	"bufio"
	"context"
	"errors"
	"io"
	"iter"
	"strings"

	"go.uber.org/zap"
)

// A File is a file opened for reading.
type File struct {
	path FilePath
	env  *Env
	r    io.ReadCloser
}

// An EditableFile is a file opened for reading and appending.
type EditableFile struct {
	*File
	w io.WriteCloser
}

// OpenFile opens the existing file at p for reading.
func OpenFile(ctx context.Context, p FilePath) (*File, error) {
	env := EnvFrom(ctx)
	if err := checkFile(ctx, env, "open", p, false); err != nil {
		return nil, err
	}
	r, err := Open(ctx, env.fsys, p.AbsoluteString())
	if err != nil {
		return nil, &OpError{Op: "open", Path: p, Err: err}
	}
	return &File{path: p, env: env, r: r}, nil
}

func checkFile(
	ctx context.Context, env *Env, op string, p FilePath, write bool,
) error {
	name := p.AbsoluteString()
	info, err := Stat(ctx, env.fsys, name)
	switch {
	case errors.Is(err, ErrNotExist):
		return &OpError{Op: op, Path: p, Err: ErrNotExist}
	case err != nil:
		return &OpError{Op: op, Path: p, Err: err}
	case info.IsDir():
		return &OpError{Op: op, Path: p, Err: ErrIsDir}
	case !accessible(ctx, env.fsys, name, write):
		return &OpError{Op: op, Path: p, Err: ErrPermission}
	}
	return nil
}

// EditFile opens the existing file at p for reading and appending.
func EditFile(ctx context.Context, p FilePath) (*EditableFile, error) {
	env := EnvFrom(ctx)
	if err := env.VerifyInSandbox(ctx, p); err != nil {
		return nil, err
	}
	if err := checkFile(ctx, env, "edit", p, true); err != nil {
		return nil, err
	}
	f, err := OpenFile(ctx, p)
	if err != nil {
		return nil, err
	}
	w, err := OpenAppend(ctx, env.fsys, p.AbsoluteString())
	if err != nil {
		return nil, errors.Join(
			&OpError{Op: "edit", Path: p, Err: err}, f.Close(),
		)
	}
	return &EditableFile{File: f, w: w}, nil
}

// CreateFile creates the file at p, along with any missing parent
// directories, and opens it for reading and appending.
//
// An existing file is truncated if ifExists is [ExistsReplace].
func CreateFile(
	ctx context.Context, p FilePath, ifExists IfExists,
) (*EditableFile, error) {
	env := EnvFrom(ctx)
	name := p.AbsoluteString()
	info, err := Stat(ctx, env.fsys, name)
	switch {
	case err == nil:
		if info.IsDir() {
			return nil, &OpError{Op: "create", Path: p, Err: ErrIsDir}
		}
		switch ifExists {
		case ExistsFail:
			return nil, &OpError{Op: "create", Path: p, Err: ErrExist}
		case ExistsOpen:
			return EditFile(ctx, p)
		}
	case errors.Is(err, ErrNotExist):
		if err := env.VerifyInSandbox(ctx, p); err != nil {
			return nil, err
		}
		dir := p.Parent().AbsoluteString()
		if err := MkdirAll(ctx, env.fsys, dir); err != nil {
			return nil, &OpError{
				Op: "create", Path: p,
				Err: errors.Join(ErrCouldNotCreate, err),
			}
		}
	default:
		return nil, &OpError{Op: "create", Path: p, Err: err}
	}
	if err := env.VerifyInSandbox(ctx, p); err != nil {
		return nil, err
	}
	w, err := Create(ctx, env.fsys, name)
	if err == nil {
		err = w.Close()
	}
	if err != nil {
		return nil, &OpError{
			Op: "create", Path: p, Err: errors.Join(ErrCouldNotCreate, err),
		}
	}
	Logger().Debug("created file", zap.String("path", name))
	return EditFile(ctx, p)
}

// Path returns the path of f.
func (f *File) Path() FilePath { return f.path }

func (f *File) String() string { return f.path.String() }

// Read reads from the file.
func (f *File) Read(p []byte) (int, error) {
	return f.r.Read(p)
}

// ReadAll reads the rest of the file.
func (f *File) ReadAll() ([]byte, error) {
	return io.ReadAll(f.r)
}

// ReadString reads the rest of the file as a string.
func (f *File) ReadString() (string, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, f.r); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Lines returns an iterator over the rest of the file, line by line,
// without line terminators.
//
// If reading fails, the iteration yields an empty line and the error,
// then stops.
func (f *File) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s := bufio.NewScanner(f.r)
		for s.Scan() {
			if !yield(s.Text(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield("", err)
		}
	}
}

// WriteTo writes the rest of the file to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	return io.Copy(w, f.r)
}

// Close closes the file.
func (f *File) Close() error {
	return f.r.Close()
}

// Write appends p to the file.
func (f *EditableFile) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

// WriteString appends s to the file.
func (f *EditableFile) WriteString(s string) (int, error) {
	return io.WriteString(f.w, s)
}

// Overwrite replaces the contents of the file with data.
// Later writes are appended to data.
func (f *EditableFile) Overwrite(ctx context.Context, data []byte) error {
	name := f.path.AbsoluteString()
	if err := f.w.Close(); err != nil {
		return &OpError{Op: "edit", Path: f.path, Err: err}
	}
	w, err := Create(ctx, f.env.fsys, name)
	if err != nil {
		return &OpError{Op: "edit", Path: f.path, Err: err}
	}
	_, err = w.Write(data)
	if err = errors.Join(err, w.Close()); err != nil {
		return &OpError{Op: "edit", Path: f.path, Err: err}
	}
	if f.w, err = OpenAppend(ctx, f.env.fsys, name); err != nil {
		return &OpError{Op: "edit", Path: f.path, Err: err}
	}
	return nil
}

// Close closes the file.
func (f *EditableFile) Close() error {
	return errors.Join(f.w.Close(), f.File.Close())
}
