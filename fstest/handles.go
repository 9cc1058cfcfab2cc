package fstest

import (
	"context"
	"errors"
	"slices"
	"testing"

	"lesiw.io/fspath"
)

// testHandles runs the handle layer on fsys, with the working directory
// at root and the sandbox enabled.
func testHandles(
	ctx context.Context, t *testing.T, fsys fspath.FS, root string,
) {
	chdir(ctx, t, fsys, root)
	env := fspath.NewEnv(fsys)
	ctx = fspath.WithEnv(ctx, env)
	wd, err := env.WorkDir(ctx)
	if err != nil {
		t.Fatalf("WorkDir: %v", err)
	}

	dir, err := fspath.CreateDir(
		ctx, fspath.AppendDir(wd, "handles"), fspath.ExistsFail,
	)
	if err != nil {
		t.Fatalf("CreateDir: %v", err)
	}
	t.Cleanup(func() {
		if derr := dir.Delete(ctx); derr != nil {
			t.Errorf("cleanup: Delete(%v): %v", dir, derr)
		}
	})

	f, err := dir.CreateFile(ctx, "notes.txt", fspath.ExistsFail)
	if err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	if _, err = f.WriteString("line1\nline2\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err = f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	_, err = dir.CreateFile(ctx, "notes.txt", fspath.ExistsFail)
	if !errors.Is(err, fspath.ErrExist) {
		t.Errorf("CreateFile(ExistsFail) err = %v, want ErrExist", err)
	}

	r, err := dir.OpenFile(ctx, "notes.txt")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	var lines []string
	for line, lerr := range r.Lines() {
		if lerr != nil {
			t.Fatalf("Lines: %v", lerr)
		}
		lines = append(lines, line)
	}
	if err = r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if want := []string{"line1", "line2"}; !slices.Equal(lines, want) {
		t.Errorf("Lines() = %q, want %q", lines, want)
	}

	e, err := dir.EditFile(ctx, "notes.txt")
	if err != nil {
		t.Fatalf("EditFile: %v", err)
	}
	if err = e.Overwrite(ctx, []byte("new")); err != nil {
		t.Fatalf("Overwrite: %v", err)
	}
	if _, err = e.WriteString("er"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err = e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := fspath.ReadFile(ctx, e.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "newer" {
		t.Errorf("ReadFile = %q, want %q", data, "newer")
	}

	files, err := dir.Files(ctx, "*.txt", false)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	var names []string
	for _, p := range files {
		names = append(names, p.String())
	}
	if want := []string{"notes.txt"}; !slices.Equal(names, want) {
		t.Errorf("Files(*.txt) = %q, want %q", names, want)
	}

	_, err = fspath.CreateDir(
		ctx, fspath.AppendDir(wd, "../outside"), fspath.ExistsOpen,
	)
	if !errors.Is(err, fspath.ErrOutsideSandbox) {
		t.Errorf("CreateDir(../outside) err = %v, want ErrOutsideSandbox", err)
	}
	if err = fspath.VerifyInSandbox(ctx, wd); err == nil {
		t.Errorf("VerifyInSandbox(%v) = nil, want an error", wd)
	}
}
