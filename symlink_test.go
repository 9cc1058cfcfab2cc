package fspath_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"lesiw.io/fspath"
	"lesiw.io/fspath/memfs"
)

func TestEvalSymlinks(t *testing.T) {
	ctx, _, fsys := testEnv(t,
		memfs.WithFile("/a/b/file.txt", []byte("data")),
	)
	links := []struct{ dest, name string }{
		{"a", "/l"},
		{"../a/b", "/a/c"},
		{"/a/c", "/abs"},
		{"b/file.txt", "/a/f"},
		{"/loop2", "/loop1"},
		{"/loop1", "/loop2"},
		{"../../../a", "/a/b/up"},
	}
	for _, l := range links {
		if err := fsys.Symlink(ctx, l.dest, l.name); err != nil {
			t.Fatalf("Symlink(%q, %q): %v", l.dest, l.name, err)
		}
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"NoLinks", "/a/b/file.txt", "/a/b/file.txt"},
		{"Root", "/", "/"},
		{"Relative", "/l/b/file.txt", "/a/b/file.txt"},
		{"RelativeDotDot", "/a/c/file.txt", "/a/b/file.txt"},
		{"Chain", "/abs/file.txt", "/a/b/file.txt"},
		{"LastComponent", "/a/f", "/a/b/file.txt"},
		{"Missing", "/l/missing/x", "/a/missing/x"},
		{"ThroughFile", "/a/b/file.txt/x", "/a/b/file.txt/x"},
		{"AboveRoot", "/a/b/up/b", "/a/b"},
		{"LeadingDotDot", "/../l", "/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fspath.MustParse[fspath.AnyKind](ctx, tt.in)
			got, err := fspath.EvalSymlinks(ctx, fsys, p)
			if err != nil {
				t.Fatalf("EvalSymlinks(%q): %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("EvalSymlinks(%q) = %q, want %q",
					tt.in, got.String(), tt.want)
			}
		})
	}

	t.Run("Loop", func(t *testing.T) {
		p := fspath.MustParse[fspath.AnyKind](ctx, "/loop1/x")
		if _, err := fspath.EvalSymlinks(ctx, fsys, p); err == nil {
			t.Errorf("EvalSymlinks(%q) = nil error, want error", p)
		}
	})
}

// workDirFS exposes only the working directory of an FS.
type workDirFS struct {
	fsys *memfs.FS
}

func (w workDirFS) Open(
	ctx context.Context, name string,
) (io.ReadCloser, error) {
	return w.fsys.Open(ctx, name)
}

func (w workDirFS) Getwd(ctx context.Context) (string, error) {
	return w.fsys.Getwd(ctx)
}

func (w workDirFS) Chdir(ctx context.Context, name string) error {
	return w.fsys.Chdir(ctx, name)
}

func TestEvalSymlinksUnsupported(t *testing.T) {
	_, _, fsys := testEnv(t)
	env := fspath.NewEnv(workDirFS{fsys})
	ctx := fspath.WithEnv(t.Context(), env)

	p := fspath.MustParse[fspath.FileKind](ctx, "/etc/hosts")
	_, err := fspath.EvalSymlinks(ctx, env.FS(), p)
	if !errors.Is(err, fspath.ErrUnsupported) {
		t.Errorf("EvalSymlinks() = %v, want ErrUnsupported", err)
	}
	err = fspath.VerifyInSandbox(ctx, p)
	if !errors.Is(err, fspath.ErrOutsideSandbox) {
		t.Errorf("VerifyInSandbox() = %v, want ErrOutsideSandbox", err)
	}
	inside := fspath.MustParse[fspath.FileKind](ctx, "file")
	if err := fspath.VerifyInSandbox(ctx, inside); err != nil {
		t.Errorf("VerifyInSandbox(%v) = %v, want nil", inside, err)
	}
}
