package fspath

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// VerifyInSandbox checks p against the sandbox of the [Env] in ctx.
// See [Env.VerifyInSandbox].
func VerifyInSandbox(ctx context.Context, p Pather) error {
	return EnvFrom(ctx).VerifyInSandbox(ctx, p)
}

// VerifyInSandbox returns nil if the sandbox is disabled, or if p is
// strictly below the current working directory. A p that is not below the
// working directory is still accepted if it is once all symbolic links in
// it are resolved. Otherwise VerifyInSandbox returns an
// [*OutsideSandboxError].
//
// Errors querying the working directory are returned as they are.
func (e *Env) VerifyInSandbox(ctx context.Context, p Pather) error {
	if !e.Sandbox() {
		return nil
	}
	wd, err := e.WorkDir(ctx)
	if err != nil {
		return err
	}
	if IsParentOf(wd, p) {
		return nil
	}
	resolved, err := EvalSymlinks(ctx, e.fsys, p)
	switch {
	case err == nil:
		if IsParentOf(wd, resolved) {
			return nil
		}
	case !errors.Is(err, ErrUnsupported):
		return err
	}
	Logger().Info("path outside sandbox",
		zap.String("path", p.AbsoluteString()),
		zap.String("workdir", wd.AbsoluteString()),
	)
	return &OutsideSandboxError{Path: p, WorkDir: wd}
}
