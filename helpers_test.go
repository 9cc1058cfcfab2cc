package fspath_test

import (
	"context"
	"testing"

	"lesiw.io/fspath"
	"lesiw.io/fspath/memfs"
)

// testEnv returns a context carrying an Env over a fresh in-memory
// filesystem with the working directory /home/u/project and the
// home directory /home/u.
func testEnv(
	t *testing.T, opts ...memfs.Option,
) (context.Context, *fspath.Env, *memfs.FS) {
	t.Helper()
	opts = append([]memfs.Option{
		memfs.WithWorkDir("/home/u/project"),
		memfs.WithHome("/home/u"),
	}, opts...)
	fsys := memfs.New(opts...)
	env := fspath.NewEnv(fsys)
	return fspath.WithEnv(t.Context(), env), env, fsys
}
