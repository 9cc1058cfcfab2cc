package fspath

import "context"

type contextKey int

const envKey contextKey = iota

// WithEnv returns a context that carries env. Paths parsed and handles
// opened with the returned context resolve relative paths, "~" and the
// sandbox through env.
func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFrom retrieves the Env from ctx.
// Returns [Default] if ctx carries no Env.
func EnvFrom(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey).(*Env); ok && env != nil {
		return env
	}
	return Default()
}
