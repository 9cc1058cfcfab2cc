package memfs

import (
	"errors"
	iofs "io/fs"
	"os"
	"syscall"
)

var (
	errIsDir  error = syscall.EISDIR
	errNotDir error = syscall.ENOTDIR
)

// pathError wraps err in an *fs.PathError unless it already is one.
// go-billy reports missing files with os.ErrNotExist, which is kept
// so that errors.Is works.
func pathError(op, name string, err error) error {
	if err == nil {
		return nil
	}
	var pe *iofs.PathError
	if errors.As(err, &pe) {
		return err
	}
	if os.IsNotExist(err) {
		err = iofs.ErrNotExist
	} else if os.IsExist(err) {
		err = iofs.ErrExist
	}
	return &iofs.PathError{Op: op, Path: name, Err: err}
}
