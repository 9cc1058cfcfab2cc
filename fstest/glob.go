package fstest

import (
	"context"
	"slices"
	"testing"

	"lesiw.io/fspath"
)

func testGlob(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	dir := root + "/glob"
	mkdir(ctx, t, fsys, dir+"/sub")
	cleanup(ctx, t, fsys, dir)
	for _, name := range []string{"a.go", "b.go", "c.txt", "sub/d.go"} {
		writeFile(ctx, t, fsys, dir+"/"+name, "")
	}

	tests := []struct {
		pattern string
		want    []string
	}{
		{"/*.go", []string{"/a.go", "/b.go"}},
		{"/*/*.go", []string{"/sub/d.go"}},
		{"/c.txt", []string{"/c.txt"}},
		{"/none.*", nil},
	}
	for _, tt := range tests {
		got, err := fspath.Glob(ctx, fsys, dir+tt.pattern)
		skipUnsupported(t, err, "glob")
		if err != nil {
			t.Fatalf("Glob(%q): %v", tt.pattern, err)
		}
		var want []string
		for _, w := range tt.want {
			want = append(want, dir+w)
		}
		slices.Sort(got)
		if !slices.Equal(got, want) {
			t.Errorf("Glob(%q) = %q, want %q", dir+tt.pattern, got, want)
		}
	}

	if _, err := fspath.Glob(ctx, fsys, dir+"/[a"); err == nil {
		t.Errorf("Glob(%q) err = nil, want ErrBadPattern", dir+"/[a")
	}
}
