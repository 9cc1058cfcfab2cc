package fspath

import "context"

// ReadFile reads the file at p and returns its contents.
// Analogous to: [os.ReadFile], cat.
func ReadFile(ctx context.Context, p FilePath) ([]byte, error) {
	f, err := OpenFile(ctx, p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadAll()
}
