package memfs_test

import (
	"errors"
	"io"
	"testing"

	"github.com/go-git/go-billy/v5"

	"lesiw.io/fspath"
	"lesiw.io/fspath/fstest"
	"lesiw.io/fspath/memfs"
)

var (
	_ fspath.AccessFS    = (*memfs.FS)(nil)
	_ fspath.AppendFS    = (*memfs.FS)(nil)
	_ fspath.CreateFS    = (*memfs.FS)(nil)
	_ fspath.GlobFS      = (*memfs.FS)(nil)
	_ fspath.HomeFS      = (*memfs.FS)(nil)
	_ fspath.MkdirFS     = (*memfs.FS)(nil)
	_ fspath.MkdirAllFS  = (*memfs.FS)(nil)
	_ fspath.ReadDirFS   = (*memfs.FS)(nil)
	_ fspath.ReadLinkFS  = (*memfs.FS)(nil)
	_ fspath.RemoveFS    = (*memfs.FS)(nil)
	_ fspath.RemoveAllFS = (*memfs.FS)(nil)
	_ fspath.StatFS      = (*memfs.FS)(nil)
	_ fspath.SymlinkFS   = (*memfs.FS)(nil)
	_ fspath.TempDirFS   = (*memfs.FS)(nil)
	_ fspath.WorkDirFS   = (*memfs.FS)(nil)
)

func TestFS(t *testing.T) {
	fstest.TestFS(t.Context(), t, memfs.New(memfs.WithWorkDir("/work")), "/work")
}

func TestOptions(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(
		memfs.WithWorkDir("/srv/app"),
		memfs.WithHome("/home/u"),
		memfs.WithFile("/srv/app/conf/app.yaml", []byte("port: 80\n")),
	)

	if wd, err := fsys.Getwd(ctx); err != nil || wd != "/srv/app" {
		t.Errorf("Getwd() = %q, %v, want %q", wd, err, "/srv/app")
	}
	if home, err := fsys.Home(ctx); err != nil || home != "/home/u" {
		t.Errorf("Home() = %q, %v, want %q", home, err, "/home/u")
	}
	info, err := fsys.Stat(ctx, "/home/u")
	if err != nil || !info.IsDir() {
		t.Errorf("Stat(/home/u) = %v, %v, want a directory", info, err)
	}

	r, err := fsys.Open(ctx, "/srv/app/conf/app.yaml")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "port: 80\n" {
		t.Errorf("ReadAll = %q, want %q", data, "port: 80\n")
	}
}

func TestCreateRequiresParent(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New()

	_, err := fsys.Create(ctx, "/missing/file.txt")
	if !errors.Is(err, fspath.ErrNotExist) {
		t.Errorf("Create(/missing/file.txt) err = %v, want ErrNotExist", err)
	}
}

func TestOpenDirectory(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(memfs.WithWorkDir("/dir"))

	if _, err := fsys.Open(ctx, "/dir"); err == nil {
		t.Errorf("Open(/dir) succeeded, want an error")
	}
}

func TestAccess(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(memfs.WithFile("/f.txt", nil))

	if err := fsys.Access(ctx, "/f.txt", true); err != nil {
		t.Errorf("Access(/f.txt, write): %v", err)
	}
	ch, ok := fsys.Unwrap().(billy.Change)
	if !ok {
		t.Skip("chmod not supported")
	}
	if err := ch.Chmod("/f.txt", 0444); err != nil {
		t.Skipf("chmod not supported: %v", err)
	}
	err := fsys.Access(ctx, "/f.txt", true)
	if !errors.Is(err, fspath.ErrPermission) {
		t.Errorf("Access(/f.txt, write) err = %v, want ErrPermission", err)
	}
}
