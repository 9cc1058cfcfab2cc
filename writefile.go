package fspath

import "context"

// WriteFile writes data to the file at p.
// It creates the file or truncates it if it already exists.
//
// Like [CreateFile], WriteFile creates missing parent directories and is
// subject to the sandbox.
func WriteFile(ctx context.Context, p FilePath, data []byte) error {
	f, err := CreateFile(ctx, p, ExistsReplace)
	if err != nil {
		return err
	}
	_, writeErr := f.Write(data)
	closeErr := f.Close()
	if writeErr != nil {
		return &OpError{Op: "write", Path: p, Err: writeErr}
	}
	if closeErr != nil {
		return &OpError{Op: "close", Path: p, Err: closeErr}
	}
	return nil
}
