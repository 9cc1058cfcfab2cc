// Package fstest implements support for testing implementations of the
// lesiw.io/fspath surfaces.
package fstest

import (
	"context"
	"testing"

	"lesiw.io/fspath"
)

// TestFS runs a compliance test suite on a filesystem implementation.
//
// root is the absolute name of an existing, empty and writable directory.
// TestFS creates, modifies and deletes items below root, changes the
// working directory of fsys to root, and restores it when done.
//
// Optional capabilities that fsys does not implement are skipped.
//
// Typical usage:
//
//	func TestMyFS(t *testing.T) {
//	    fsys := mypkg.New()
//	    fstest.TestFS(t.Context(), t, fsys, "/work")
//	}
func TestFS(ctx context.Context, t *testing.T, fsys fspath.FS, root string) {
	t.Helper()

	t.Run("File", func(t *testing.T) {
		t.Run("CreateAndRead", func(t *testing.T) {
			testCreateAndRead(ctx, t, fsys, root)
		})
		t.Run("CreateTruncates", func(t *testing.T) {
			testCreateTruncates(ctx, t, fsys, root)
		})
		t.Run("Append", func(t *testing.T) {
			testAppend(ctx, t, fsys, root)
		})
		t.Run("OpenMissing", func(t *testing.T) {
			testOpenMissing(ctx, t, fsys, root)
		})
	})

	t.Run("Dir", func(t *testing.T) {
		t.Run("Mkdir", func(t *testing.T) {
			testMkdir(ctx, t, fsys, root)
		})
		t.Run("MkdirAll", func(t *testing.T) {
			testMkdirAll(ctx, t, fsys, root)
		})
		t.Run("ReadDir", func(t *testing.T) {
			testReadDir(ctx, t, fsys, root)
		})
		t.Run("Walk", func(t *testing.T) {
			testWalk(ctx, t, fsys, root)
		})
		t.Run("RemoveAll", func(t *testing.T) {
			testRemoveAll(ctx, t, fsys, root)
		})
		t.Run("TempDir", func(t *testing.T) {
			testTempDir(ctx, t, fsys)
		})
	})

	t.Run("Stat", func(t *testing.T) {
		testStat(ctx, t, fsys, root)
	})

	t.Run("Glob", func(t *testing.T) {
		testGlob(ctx, t, fsys, root)
	})

	t.Run("Symlink", func(t *testing.T) {
		t.Run("File", func(t *testing.T) {
			testSymlinkFile(ctx, t, fsys, root)
		})
		t.Run("EvalSymlinks", func(t *testing.T) {
			testEvalSymlinks(ctx, t, fsys, root)
		})
	})

	t.Run("WorkDir", func(t *testing.T) {
		testWorkDir(ctx, t, fsys, root)
	})

	t.Run("Handles", func(t *testing.T) {
		testHandles(ctx, t, fsys, root)
	})
}
