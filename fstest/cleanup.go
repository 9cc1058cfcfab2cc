package fstest

import (
	"context"
	"errors"
	"io"
	"testing"

	"lesiw.io/fspath"
)

// cleanup registers removal of name using t.Cleanup.
func cleanup(ctx context.Context, t *testing.T, fsys fspath.FS, name string) {
	t.Helper()
	t.Cleanup(func() {
		if err := fspath.RemoveAll(ctx, fsys, name); err != nil {
			t.Errorf("cleanup: RemoveAll(%q): %v", name, err)
		}
	})
}

// skipUnsupported skips the test if err is ErrUnsupported.
func skipUnsupported(t *testing.T, err error, what string) {
	t.Helper()
	if errors.Is(err, fspath.ErrUnsupported) {
		t.Skipf("%s not supported", what)
	}
}

// writeFile creates name with the given contents.
func writeFile(
	ctx context.Context, t *testing.T, fsys fspath.FS, name, data string,
) {
	t.Helper()
	w, err := fspath.Create(ctx, fsys, name)
	skipUnsupported(t, err, "create")
	if err != nil {
		t.Fatalf("Create(%q): %v", name, err)
	}
	if _, err := io.WriteString(w, data); err != nil {
		t.Fatalf("Write(%q): %v", name, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close(%q): %v", name, err)
	}
}

// readFile returns the contents of name.
func readFile(
	ctx context.Context, t *testing.T, fsys fspath.FS, name string,
) string {
	t.Helper()
	r, err := fspath.Open(ctx, fsys, name)
	if err != nil {
		t.Fatalf("Open(%q): %v", name, err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll(%q): %v", name, err)
	}
	return string(data)
}

// mkdir creates the directory name and its parents.
func mkdir(ctx context.Context, t *testing.T, fsys fspath.FS, name string) {
	t.Helper()
	err := fspath.MkdirAll(ctx, fsys, name)
	skipUnsupported(t, err, "mkdir")
	if err != nil {
		t.Fatalf("MkdirAll(%q): %v", name, err)
	}
}
