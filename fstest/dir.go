package fstest

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"lesiw.io/fspath"
)

func testMkdir(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	name := root + "/mkdir"
	err := fspath.Mkdir(ctx, fsys, name)
	skipUnsupported(t, err, "mkdir")
	if err != nil {
		t.Fatalf("Mkdir(%q): %v", name, err)
	}
	cleanup(ctx, t, fsys, name)

	if err := fspath.Mkdir(ctx, fsys, name); !errors.Is(err, fspath.ErrExist) {
		t.Errorf("Mkdir(%q) again err = %v, want ErrExist", name, err)
	}
	nested := root + "/mkdir-missing/child"
	if err := fspath.Mkdir(ctx, fsys, nested); err == nil {
		t.Errorf("Mkdir(%q) without parent succeeded", nested)
	}
}

func testMkdirAll(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	name := root + "/all/b/c"
	mkdir(ctx, t, fsys, name)
	cleanup(ctx, t, fsys, root+"/all")

	info, err := fspath.Stat(ctx, fsys, name)
	if err != nil {
		t.Fatalf("Stat(%q): %v", name, err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q).IsDir() = false, want true", name)
	}
	if err := fspath.MkdirAll(ctx, fsys, name); err != nil {
		t.Errorf("MkdirAll(%q) on existing directory: %v", name, err)
	}
}

func testReadDir(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	dir := root + "/readdir"
	mkdir(ctx, t, fsys, dir+"/sub")
	cleanup(ctx, t, fsys, dir)
	writeFile(ctx, t, fsys, dir+"/b.txt", "b")
	writeFile(ctx, t, fsys, dir+"/a.txt", "a")

	var names []string
	for entry, err := range fspath.ReadDir(ctx, fsys, dir) {
		skipUnsupported(t, err, "readdir")
		if err != nil {
			t.Fatalf("ReadDir(%q): %v", dir, err)
		}
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	slices.Sort(names)
	want := []string{"a.txt", "b.txt", "sub/"}
	if !slices.Equal(names, want) {
		t.Errorf("ReadDir(%q) = %q, want %q", dir, names, want)
	}
}

func testWalk(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	dir := root + "/walk"
	mkdir(ctx, t, fsys, dir+"/a/b")
	cleanup(ctx, t, fsys, dir)
	writeFile(ctx, t, fsys, dir+"/a/b/deep.txt", "")
	writeFile(ctx, t, fsys, dir+"/top.txt", "")

	var got []string
	for entry, err := range fspath.Walk(ctx, fsys, dir, 0) {
		skipUnsupported(t, err, "readdir")
		if err != nil {
			t.Fatalf("Walk(%q): %v", dir, err)
		}
		got = append(got, strings.TrimPrefix(entry.Path, dir+"/"))
	}
	want := []string{"a", "top.txt", "a/b", "a/b/deep.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk(%q) = %q, want %q", dir, got, want)
	}

	got = got[:0]
	for entry, err := range fspath.Walk(ctx, fsys, dir, 1) {
		if err != nil {
			t.Fatalf("Walk(%q, 1): %v", dir, err)
		}
		got = append(got, strings.TrimPrefix(entry.Path, dir+"/"))
	}
	if want := []string{"a", "top.txt"}; !slices.Equal(got, want) {
		t.Errorf("Walk(%q, 1) = %q, want %q", dir, got, want)
	}
}

func testRemoveAll(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	dir := root + "/removeall"
	mkdir(ctx, t, fsys, dir+"/x/y")
	writeFile(ctx, t, fsys, dir+"/x/y/f.txt", "f")

	err := fspath.RemoveAll(ctx, fsys, dir)
	skipUnsupported(t, err, "remove")
	if err != nil {
		t.Fatalf("RemoveAll(%q): %v", dir, err)
	}
	_, err = fspath.Stat(ctx, fsys, dir)
	if !errors.Is(err, fspath.ErrNotExist) {
		t.Errorf("Stat(%q) after RemoveAll err = %v, want ErrNotExist",
			dir, err)
	}
	if err := fspath.RemoveAll(ctx, fsys, dir); err != nil {
		t.Errorf("RemoveAll(%q) on missing path: %v", dir, err)
	}
}

func testTempDir(ctx context.Context, t *testing.T, fsys fspath.FS) {
	dir, err := fspath.TempDir(ctx, fsys, "fstest")
	skipUnsupported(t, err, "tempdir")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	cleanup(ctx, t, fsys, dir)

	if !strings.HasPrefix(dir, "/") {
		t.Errorf("TempDir = %q, want an absolute name", dir)
	}
	info, err := fspath.Stat(ctx, fsys, dir)
	if err != nil {
		t.Fatalf("Stat(%q): %v", dir, err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q).IsDir() = false, want true", dir)
	}
}
