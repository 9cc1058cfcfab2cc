package fstest

import (
	"context"
	"testing"

	"lesiw.io/fspath"
)

func testSymlinkFile(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	target := root + "/symlink-target.txt"
	link := root + "/symlink-link.txt"
	writeFile(ctx, t, fsys, target, "through the link")
	cleanup(ctx, t, fsys, target)

	err := fspath.Symlink(ctx, fsys, target, link)
	skipUnsupported(t, err, "symlink")
	if err != nil {
		t.Fatalf("Symlink(%q, %q): %v", target, link, err)
	}
	cleanup(ctx, t, fsys, link)

	got, want := readFile(ctx, t, fsys, link), "through the link"
	if got != want {
		t.Errorf("read %q = %q, want %q", link, got, want)
	}

	dest, err := fspath.ReadLink(ctx, fsys, link)
	if err != nil {
		t.Fatalf("ReadLink(%q): %v", link, err)
	}
	if dest != target {
		t.Errorf("ReadLink(%q) = %q, want %q", link, dest, target)
	}

	info, err := fspath.Lstat(ctx, fsys, link)
	if err != nil {
		t.Fatalf("Lstat(%q): %v", link, err)
	}
	if info.Mode()&fspath.ModeSymlink == 0 {
		t.Errorf("Lstat(%q).Mode() = %v, want a symlink", link, info.Mode())
	}
}

func testEvalSymlinks(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	dir := root + "/eval"
	mkdir(ctx, t, fsys, dir+"/target/sub")
	cleanup(ctx, t, fsys, dir)
	writeFile(ctx, t, fsys, dir+"/target/sub/f.txt", "")

	err := fspath.Symlink(ctx, fsys, "target", dir+"/rel")
	skipUnsupported(t, err, "symlink")
	if err != nil {
		t.Fatalf("Symlink(%q): %v", dir+"/rel", err)
	}
	err = fspath.Symlink(ctx, fsys, dir+"/target/sub", dir+"/abs")
	if err != nil {
		t.Fatalf("Symlink(%q): %v", dir+"/abs", err)
	}

	base := eval(ctx, t, fsys, dir)
	tests := []struct {
		name string
		want string
	}{
		{dir + "/rel/sub/f.txt", base + "/target/sub/f.txt"},
		{dir + "/abs/f.txt", base + "/target/sub/f.txt"},
		{dir + "/rel/missing/x", base + "/target/missing/x"},
		{dir + "/target", base + "/target"},
	}
	for _, tt := range tests {
		if got := eval(ctx, t, fsys, tt.name); got != tt.want {
			t.Errorf("EvalSymlinks(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func eval(
	ctx context.Context, t *testing.T, fsys fspath.FS, name string,
) string {
	t.Helper()
	p, err := fspath.EvalSymlinks(
		ctx, fsys, fspath.MustParse[fspath.AnyKind](ctx, name),
	)
	skipUnsupported(t, err, "evalsymlinks")
	if err != nil {
		t.Fatalf("EvalSymlinks(%q): %v", name, err)
	}
	return p.AbsoluteString()
}
