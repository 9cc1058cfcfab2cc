package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/fspath"
)

// chdir changes the working directory of fsys to dir
// until the test finishes.
func chdir(ctx context.Context, t *testing.T, fsys fspath.FS, dir string) {
	t.Helper()
	old, err := fspath.Getwd(ctx, fsys)
	skipUnsupported(t, err, "getwd")
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := fspath.Chdir(ctx, fsys, dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := fspath.Chdir(ctx, fsys, old); err != nil {
			t.Errorf("cleanup: Chdir(%q): %v", old, err)
		}
	})
}

func testWorkDir(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	chdir(ctx, t, fsys, root)

	wd, err := fspath.Getwd(ctx, fsys)
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	got, want := eval(ctx, t, fsys, wd), eval(ctx, t, fsys, root)
	if got != want {
		t.Errorf("Getwd() = %q, want %q", got, want)
	}

	file := root + "/wd-file.txt"
	writeFile(ctx, t, fsys, file, "")
	cleanup(ctx, t, fsys, file)
	if err = fspath.Chdir(ctx, fsys, file); err == nil {
		t.Errorf("Chdir(%q) to a file succeeded", file)
	}
	missing := root + "/wd-missing"
	err = fspath.Chdir(ctx, fsys, missing)
	if !errors.Is(err, fspath.ErrNotExist) {
		t.Errorf("Chdir(%q) err = %v, want ErrNotExist", missing, err)
	}
}
