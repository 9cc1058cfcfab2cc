package osfs_test

import (
	"testing"

	"lesiw.io/fspath"
	"lesiw.io/fspath/fstest"
	"lesiw.io/fspath/osfs"
)

var (
	_ fspath.AccessFS       = (*osfs.FS)(nil)
	_ fspath.AppendFS       = (*osfs.FS)(nil)
	_ fspath.CreateFS       = (*osfs.FS)(nil)
	_ fspath.EvalSymlinksFS = (*osfs.FS)(nil)
	_ fspath.GlobFS         = (*osfs.FS)(nil)
	_ fspath.HomeFS         = (*osfs.FS)(nil)
	_ fspath.MkdirFS        = (*osfs.FS)(nil)
	_ fspath.MkdirAllFS     = (*osfs.FS)(nil)
	_ fspath.ReadDirFS      = (*osfs.FS)(nil)
	_ fspath.ReadLinkFS     = (*osfs.FS)(nil)
	_ fspath.RemoveFS       = (*osfs.FS)(nil)
	_ fspath.RemoveAllFS    = (*osfs.FS)(nil)
	_ fspath.StatFS         = (*osfs.FS)(nil)
	_ fspath.SymlinkFS      = (*osfs.FS)(nil)
	_ fspath.TempDirFS      = (*osfs.FS)(nil)
	_ fspath.WorkDirFS      = (*osfs.FS)(nil)
)

func TestFS(t *testing.T) {
	fstest.TestFS(t.Context(), t, osfs.New(), t.TempDir())
}
