package fspath

import (
	"io"

	"go.uber.org/zap"
)

// Close releases the filesystem of e if it implements [io.Closer].
// Handles opened through e must not be used afterwards.
//
// Closing the [Default] Env is a no-op.
func (e *Env) Close() error {
	c, ok := e.fsys.(io.Closer)
	if !ok || e == Default() {
		return nil
	}
	err := c.Close()
	if err != nil {
		Logger().Warn("close filesystem", zap.Error(err))
	}
	return err
}
