package fspath

import (
	"context"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"lesiw.io/fspath/osfs"
	"lesiw.io/fspath/path"
)

// SandboxEnv is the environment variable that configures the sandbox of the
// [Default] Env. It is parsed with [strconv.ParseBool]; the sandbox is
// enabled if it is unset or invalid.
const SandboxEnv = "FSPATH_SANDBOX"

// An Env is the process state that paths and handles depend on: the
// filesystem with its working and home directories, and the sandbox flag.
//
// An Env is safe for concurrent use. Changing the working directory is not
// synchronized with parsing paths.
type Env struct {
	fsys    FS
	sandbox atomic.Bool
}

// An EnvOption configures an Env.
type EnvOption func(*Env)

// WithSandbox sets whether the sandbox is enabled. It is by default.
func WithSandbox(enabled bool) EnvOption {
	return func(e *Env) { e.sandbox.Store(enabled) }
}

// NewEnv returns an Env over fsys with the sandbox enabled.
func NewEnv(fsys FS, opts ...EnvOption) *Env {
	e := &Env{fsys: fsys}
	e.sandbox.Store(true)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEnv = sync.OnceValue(func() *Env {
	return NewEnv(osfs.New(), WithSandbox(sandboxFromEnviron()))
})

// Default returns the Env of the operating system.
func Default() *Env { return defaultEnv() }

func sandboxFromEnviron() bool {
	s, ok := os.LookupEnv(SandboxEnv)
	if !ok {
		return true
	}
	enabled, err := strconv.ParseBool(s)
	if err != nil {
		Logger().Warn("invalid sandbox setting, sandbox enabled",
			zap.String("var", SandboxEnv), zap.String("value", s))
		return true
	}
	return enabled
}

// FS returns the filesystem of e.
func (e *Env) FS() FS { return e.fsys }

// WorkDir returns the current working directory.
func (e *Env) WorkDir(ctx context.Context) (DirPath, error) {
	dir, err := Getwd(ctx, e.fsys)
	if err != nil {
		return DirPath{}, err
	}
	return absDir("getwd", dir)
}

// Chdir changes the working directory to dir.
//
// Paths that were based on the previous working directory keep their base.
func (e *Env) Chdir(ctx context.Context, dir DirPath) error {
	return Chdir(ctx, e.fsys, dir.AbsoluteString())
}

// Home returns the home directory of the current user.
func (e *Env) Home(ctx context.Context) (DirPath, error) {
	dir, err := Home(ctx, e.fsys)
	if err != nil {
		return DirPath{}, err
	}
	return absDir("home", dir)
}

// Root returns the root directory.
func (e *Env) Root() DirPath { return DirPath{} }

func absDir(op, dir string) (DirPath, error) {
	if !path.IsAbs(dir) {
		return DirPath{}, &PathError{Op: op, Path: dir, Err: ErrInvalid}
	}
	return Abs[DirKind](path.Split(dir)...), nil
}

// Sandbox reports whether the sandbox is enabled.
func (e *Env) Sandbox() bool { return e.sandbox.Load() }

// SetSandbox enables or disables the sandbox.
func (e *Env) SetSandbox(enabled bool) { e.sandbox.Store(enabled) }
