package fstest

import (
	"context"
	"errors"
	"io"
	"testing"

	"lesiw.io/fspath"
)

func testCreateAndRead(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	name := root + "/create.txt"
	writeFile(ctx, t, fsys, name, "hello")
	cleanup(ctx, t, fsys, name)

	if got := readFile(ctx, t, fsys, name); got != "hello" {
		t.Errorf("read %q = %q, want %q", name, got, "hello")
	}
}

func testCreateTruncates(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	name := root + "/truncate.txt"
	writeFile(ctx, t, fsys, name, "a longer first version")
	cleanup(ctx, t, fsys, name)
	writeFile(ctx, t, fsys, name, "short")

	if got := readFile(ctx, t, fsys, name); got != "short" {
		t.Errorf("read %q = %q, want %q", name, got, "short")
	}
}

func testAppend(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	name := root + "/append.txt"
	writeFile(ctx, t, fsys, name, "one\n")
	cleanup(ctx, t, fsys, name)

	w, err := fspath.OpenAppend(ctx, fsys, name)
	skipUnsupported(t, err, "append")
	if err != nil {
		t.Fatalf("OpenAppend(%q): %v", name, err)
	}
	if _, err := io.WriteString(w, "two\n"); err != nil {
		t.Fatalf("Write(%q): %v", name, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close(%q): %v", name, err)
	}

	if got, want := readFile(ctx, t, fsys, name), "one\ntwo\n"; got != want {
		t.Errorf("read %q = %q, want %q", name, got, want)
	}
}

func testOpenMissing(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	name := root + "/missing.txt"
	_, err := fspath.Open(ctx, fsys, name)
	if !errors.Is(err, fspath.ErrNotExist) {
		t.Errorf("Open(%q) err = %v, want ErrNotExist", name, err)
	}
}
