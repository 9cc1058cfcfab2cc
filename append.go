package fspath

import (
	"slices"

	"lesiw.io/fspath/path"
)

// Append returns the path s inside dir.
//
// s is always treated as relative to dir. If dir is based, the result keeps
// its base and s extends the relative part. Dot-dots in s are collapsed.
//
// A [FilePath] cannot end with "/" or resolve to the root. Append reports
// a [*MalformedPathError] in both cases.
func Append[K Kinder](dir DirPath, s string) (Path[K], error) {
	var zero Path[K]
	if kindOf[K]() == KindFile && path.IsDir(s) {
		return zero, &MalformedPathError{
			Path: s, Reason: "a trailing separator denotes a directory",
		}
	}
	p := appendSegs[K](dir, path.Normalize(path.Split(s)))
	if !p.valid() {
		return zero, &MalformedPathError{
			Path: s, Reason: "the root directory is not a file",
		}
	}
	return p, nil
}

// AppendFile returns the file s inside dir. See [Append].
func AppendFile(dir DirPath, s string) (FilePath, error) {
	return Append[FileKind](dir, s)
}

// AppendDir returns the directory s inside dir. See [Append].
func AppendDir(dir DirPath, s string) DirPath {
	p, _ := Append[DirKind](dir, s)
	return p
}

// Join returns p rebased on dir: the result is based on the absolute
// location of dir, and its relative part is the relative part of p if p is
// based, or all of its segments otherwise. The base of p is discarded.
//
// Join panics if the result is a [FilePath] that resolves to the root.
func Join[K Kinder](dir DirPath, p Path[K]) Path[K] {
	segs, ok := p.RelativeSegments()
	if !ok {
		segs = p.Segments()
	}
	return Based[K](dir.AbsoluteSegments(), segs)
}

func appendSegs[K Kinder](dir DirPath, segs []string) Path[K] {
	if dir.based {
		return Path[K]{
			segs: slices.Concat(
				dir.segs[:dir.split],
				path.Collapse(slices.Concat(dir.segs[dir.split:], segs)),
			),
			split: dir.split,
			based: true,
		}
	}
	return Path[K]{segs: path.Collapse(slices.Concat(dir.segs, segs))}
}
