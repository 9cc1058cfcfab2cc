package fspath

import (
	"context"
	"errors"
	"strings"

	"lesiw.io/fspath/path"
)

// A RemoveAllFS is a file system with the RemoveAll method.
//
// If not implemented, RemoveAll falls back to recursive removal using
// RemoveFS, ReadLinkFS and ReadDirFS.
type RemoveAllFS interface {
	FS

	// RemoveAll removes name and any children it contains.
	// A symbolic link is removed, not the item it points to.
	// RemoveAll returns nil if name does not exist.
	RemoveAll(ctx context.Context, name string) error
}

// RemoveAll removes name and any children it contains.
// Analogous to: [os.RemoveAll], rm -rf.
//
// Requires: [RemoveAllFS] || ([RemoveFS] && [ReadLinkFS] && [ReadDirFS])
func RemoveAll(ctx context.Context, fsys FS, name string) error {
	if rafs, ok := fsys.(RemoveAllFS); ok {
		err := rafs.RemoveAll(ctx, name)
		if !errors.Is(err, ErrUnsupported) {
			return newPathError("remove", name, err)
		}
	}

	_, hasRemove := fsys.(RemoveFS)
	_, hasLstat := fsys.(ReadLinkFS)
	_, hasReadDir := fsys.(ReadDirFS)
	if !hasRemove || !hasLstat || !hasReadDir {
		return &PathError{Op: "remove", Path: name, Err: ErrUnsupported}
	}
	return removeAll(ctx, fsys, name)
}

func removeAll(ctx context.Context, fsys FS, name string) error {
	info, err := Lstat(ctx, fsys, name)
	if errors.Is(err, ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	if info.IsDir() {
		prefix := strings.TrimSuffix(name, path.Separator) + path.Separator
		for entry, err := range ReadDir(ctx, fsys, name) {
			if err != nil {
				return err
			}
			if err := removeAll(ctx, fsys, prefix+entry.Name()); err != nil {
				return err
			}
		}
	}
	err = Remove(ctx, fsys, name)
	if errors.Is(err, ErrNotExist) {
		return nil
	}
	return err
}
