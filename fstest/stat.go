package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/fspath"
)

func testStat(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	name := root + "/stat.txt"
	writeFile(ctx, t, fsys, name, "12345")
	cleanup(ctx, t, fsys, name)

	info, err := fspath.Stat(ctx, fsys, name)
	skipUnsupported(t, err, "stat")
	if err != nil {
		t.Fatalf("Stat(%q): %v", name, err)
	}
	if info.Name() != "stat.txt" {
		t.Errorf("Stat(%q).Name() = %q, want %q",
			name, info.Name(), "stat.txt")
	}
	if info.Size() != 5 {
		t.Errorf("Stat(%q).Size() = %d, want 5", name, info.Size())
	}
	if got := fspath.FileTypeOf(info.Mode()); got != fspath.TypeRegular {
		t.Errorf("FileTypeOf(%q) = %v, want %v", name, got, fspath.TypeRegular)
	}

	err = fspath.Access(ctx, fsys, name, true)
	if err != nil && !errors.Is(err, fspath.ErrUnsupported) {
		t.Errorf("Access(%q, write): %v", name, err)
	}

	missing := root + "/stat-missing"
	_, err = fspath.Stat(ctx, fsys, missing)
	if !errors.Is(err, fspath.ErrNotExist) {
		t.Errorf("Stat(%q) err = %v, want ErrNotExist", missing, err)
	}
}
