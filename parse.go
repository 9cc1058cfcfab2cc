package fspath

import (
	"context"
	"slices"

	"lesiw.io/fspath/path"
)

// Parse parses s into a path of kind K.
//
// A leading "/" makes the path absolute. A leading "~" segment is replaced by
// the home directory, which also yields an absolute path. Any other path is
// based on the working directory, which is read now from the [Env] in ctx.
// The empty string is the same as ".".
//
// A [FilePath] cannot end with "/" or resolve to the root. Parse reports
// a [*MalformedPathError] in both cases.
func Parse[K Kinder](ctx context.Context, s string) (Path[K], error) {
	var zero Path[K]
	if kindOf[K]() == KindFile && path.IsDir(s) {
		return zero, &MalformedPathError{
			Path: s, Reason: "a trailing separator denotes a directory",
		}
	}
	segs, rel := path.Parse(s)
	var p Path[K]
	switch {
	case path.IsHome(s):
		home, err := EnvFrom(ctx).Home(ctx)
		if err != nil {
			return zero, err
		}
		p = Path[K]{segs: path.Normalize(slices.Concat(home.segs, segs))}
	case rel:
		wd, err := EnvFrom(ctx).WorkDir(ctx)
		if err != nil {
			return zero, err
		}
		p = Path[K]{
			segs:  slices.Concat(wd.segs, segs),
			split: len(wd.segs),
			based: true,
		}
	default:
		p = Path[K]{segs: segs}
	}
	if !p.valid() {
		return zero, &MalformedPathError{
			Path: s, Reason: "the root directory is not a file",
		}
	}
	return p, nil
}

// MustParse is like [Parse] but panics if s cannot be parsed.
func MustParse[K Kinder](ctx context.Context, s string) Path[K] {
	p, err := Parse[K](ctx, s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseBased returns the path rel relative to the directory base.
//
// base is parsed like [Parse] parses a directory, so it may itself be
// relative to the working directory. rel is always treated as relative,
// even if it starts with "/".
func ParseBased[K Kinder](
	ctx context.Context, base, rel string,
) (Path[K], error) {
	var zero Path[K]
	if kindOf[K]() == KindFile && path.IsDir(rel) {
		return zero, &MalformedPathError{
			Path: rel, Reason: "a trailing separator denotes a directory",
		}
	}
	b, err := Parse[DirKind](ctx, base)
	if err != nil {
		return zero, err
	}
	r, _ := path.Parse(path.Separator + rel)
	bsegs := b.AbsoluteSegments()
	p := Path[K]{segs: slices.Concat(bsegs, r), split: len(bsegs), based: true}
	if !p.valid() {
		return zero, &MalformedPathError{
			Path: rel, Reason: "the root directory is not a file",
		}
	}
	return p, nil
}

// Detect parses s and determines its kind.
//
// A trailing "/" yields a [DirPath]. Otherwise the item is looked up through
// the [Env] in ctx: a directory yields a DirPath, anything else a
// [FilePath]. Detect reports [ErrNotExist] if there is no such item.
func Detect(ctx context.Context, s string) (Pather, error) {
	if path.IsDir(s) {
		return Parse[DirKind](ctx, s)
	}
	p, err := Parse[AnyKind](ctx, s)
	if err != nil {
		return nil, err
	}
	switch t, err := TypeOf(ctx, p); {
	case err != nil:
		return nil, err
	case t == TypeDir:
		return convert[DirKind](p), nil
	}
	return convert[FileKind](p), nil
}
