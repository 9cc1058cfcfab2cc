package fspath

import (
	"context"
	"errors"
)

// A StatFS is a file system with the Stat method.
type StatFS interface {
	FS

	// Stat returns file metadata for the named file,
	// following symbolic links.
	Stat(ctx context.Context, name string) (FileInfo, error)
}

// Stat returns file metadata for the named file.
// Analogous to: [os.Stat], stat.
//
// Requires: [StatFS]
func Stat(ctx context.Context, fsys FS, name string) (FileInfo, error) {
	if sfs, ok := fsys.(StatFS); ok {
		if info, err := sfs.Stat(ctx, name); !errors.Is(err, ErrUnsupported) {
			return info, newPathError("stat", name, err)
		}
	}
	return nil, &PathError{Op: "stat", Path: name, Err: ErrUnsupported}
}

// FileType is the type of an item in the filesystem.
type FileType uint8

const (
	TypeUnknown FileType = iota
	TypeRegular
	TypeDir
	TypeCharDevice
	TypeBlockDevice
	TypeNamedPipe
	TypeSocket
)

func (t FileType) String() string {
	switch t {
	case TypeRegular:
		return "regular file"
	case TypeDir:
		return "directory"
	case TypeCharDevice:
		return "character device"
	case TypeBlockDevice:
		return "block device"
	case TypeNamedPipe:
		return "named pipe"
	case TypeSocket:
		return "socket"
	}
	return "unknown"
}

// FileTypeOf returns the FileType described by mode.
func FileTypeOf(mode Mode) FileType {
	switch {
	case mode.IsRegular():
		return TypeRegular
	case mode.IsDir():
		return TypeDir
	case mode&ModeCharDevice != 0:
		return TypeCharDevice
	case mode&ModeDevice != 0:
		return TypeBlockDevice
	case mode&ModeNamedPipe != 0:
		return TypeNamedPipe
	case mode&ModeSocket != 0:
		return TypeSocket
	}
	return TypeUnknown
}

// TypeOf returns the type of the item at p, following symbolic links.
// The filesystem is the one of the [Env] in ctx.
func TypeOf(ctx context.Context, p Pather) (FileType, error) {
	info, err := Stat(ctx, EnvFrom(ctx).FS(), p.AbsoluteString())
	if err != nil {
		return TypeUnknown, err
	}
	return FileTypeOf(info.Mode()), nil
}

// Exists reports whether there is an item at p, following symbolic links.
// The filesystem is the one of the [Env] in ctx.
func Exists(ctx context.Context, p Pather) bool {
	_, err := Stat(ctx, EnvFrom(ctx).FS(), p.AbsoluteString())
	return err == nil
}
