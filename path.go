package fspath

import (
	"slices"

	"lesiw.io/fspath/path"
)

// A Path is a normalized location in the filesystem.
//
// It is either absolute, or based: the concatenation of a base directory and
// a path relative to it. A based path remembers both parts, so that it can be
// printed the way it was given while still resolving to an absolute location.
//
// The zero Path is the absolute root directory. For a [FilePath] this is
// not a valid value: no constructor returns a FilePath that resolves to the
// root, so the zero FilePath only means that no path was set. Paths are
// immutable and safe for concurrent use.
type Path[K Kinder] struct {
	segs  []string
	split int
	based bool
}

// DirPath is a path to a directory.
type DirPath = Path[DirKind]

// FilePath is a path to something that is not a directory.
type FilePath = Path[FileKind]

// AnyPath is a path to an item of unknown type.
type AnyPath = Path[AnyKind]

// Pather is the kind-erased view of a [Path].
type Pather interface {
	Kind() Kind
	Segments() []string
	AbsoluteSegments() []string
	BaseSegments() ([]string, bool)
	RelativeSegments() ([]string, bool)
	String() string
	AbsoluteString() string
	Name() string
}

var (
	_ Pather = DirPath{}
	_ Pather = FilePath{}
	_ Pather = AnyPath{}
)

// Abs returns the absolute path with the given segments.
//
// Abs panics if K is [FileKind] and the segments normalize to the root.
func Abs[K Kinder](segs ...string) Path[K] {
	p := Path[K]{segs: path.Normalize(segs)}
	p.mustValid()
	return p
}

// Based returns the path rel relative to the directory base.
// Both parts are normalized independently.
//
// Based panics if K is [FileKind] and the path resolves to the root.
func Based[K Kinder](base, rel []string) Path[K] {
	b, r := path.Normalize(base), path.Normalize(rel)
	p := Path[K]{segs: slices.Concat(b, r), split: len(b), based: true}
	p.mustValid()
	return p
}

func (p Path[K]) valid() bool {
	return p.Kind() != KindFile || len(p.AbsoluteSegments()) > 0
}

func (p Path[K]) mustValid() {
	if !p.valid() {
		panic("fspath: the root directory is not a file")
	}
}

// convert returns p with its kind replaced by K.
func convert[K Kinder](p Pather) Path[K] {
	if base, ok := p.BaseSegments(); ok {
		rel, _ := p.RelativeSegments()
		return Based[K](base, rel)
	}
	return Abs[K](p.Segments()...)
}

// Kind returns the kind of item p denotes.
func (p Path[K]) Kind() Kind { return kindOf[K]() }

// IsZero reports whether p is the zero Path.
func (p Path[K]) IsZero() bool {
	return len(p.segs) == 0 && !p.based
}

// Segments returns all segments of p, base and relative part included.
func (p Path[K]) Segments() []string {
	return slices.Clone(p.segs)
}

// AbsoluteSegments returns the segments of the absolute location of p.
//
// For a based path whose relative part starts with "..", the dot-dots are
// collapsed into the base.
func (p Path[K]) AbsoluteSegments() []string {
	if p.based && p.split < len(p.segs) && p.segs[p.split] == path.ParentDir {
		return path.Collapse(p.segs)
	}
	return slices.Clone(p.segs)
}

// BaseSegments returns the segments of the base directory.
// It reports false if p is absolute.
func (p Path[K]) BaseSegments() ([]string, bool) {
	if !p.based {
		return nil, false
	}
	return slices.Clone(p.segs[:p.split]), true
}

// RelativeSegments returns the segments relative to the base directory.
// It reports false if p is absolute.
func (p Path[K]) RelativeSegments() ([]string, bool) {
	if !p.based {
		return nil, false
	}
	return slices.Clone(p.segs[p.split:]), true
}

// Base returns the base directory of p.
// It reports false if p is absolute.
func (p Path[K]) Base() (DirPath, bool) {
	if !p.based {
		return DirPath{}, false
	}
	return Abs[DirKind](p.segs[:p.split]...), true
}

// String returns the relative part of p if it is based,
// and the absolute path otherwise.
func (p Path[K]) String() string {
	if s, ok := p.RelativeString(); ok {
		return s
	}
	return p.AbsoluteString()
}

// RelativeString returns the relative part of p, or "." if it is empty.
// It reports false if p is absolute.
func (p Path[K]) RelativeString() (string, bool) {
	if !p.based {
		return "", false
	}
	return path.Join(p.segs[p.split:]), true
}

// AbsoluteString returns the absolute location of p.
func (p Path[K]) AbsoluteString() string {
	return path.JoinAbs(p.AbsoluteSegments())
}

// Absolute returns p without its base directory.
func (p Path[K]) Absolute() Path[K] {
	return Path[K]{segs: p.AbsoluteSegments()}
}

// Name returns the last segment of the absolute location of p,
// or "/" for the root.
func (p Path[K]) Name() string {
	abs := p.AbsoluteSegments()
	if len(abs) == 0 {
		return path.Separator
	}
	return abs[len(abs)-1]
}

// Ext returns the extension of the name of p, without the dot.
// It reports false if the name has no extension.
func (p Path[K]) Ext() (string, bool) {
	return path.Ext(p.Name())
}

// NameWithoutExt returns the name of p without its extension.
func (p Path[K]) NameWithoutExt() string {
	return path.TrimExt(p.Name())
}
