//go:build !unix

package osfs

import (
	"context"
	"errors"
)

// Access implements fspath.AccessFS. Access checks are not available on
// this platform.
func (*FS) Access(context.Context, string, bool) error {
	return errors.ErrUnsupported
}
