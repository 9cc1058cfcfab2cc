package fspath

import "lesiw.io/fspath/path"

// Parent returns the directory containing p. See [Path.ParentN].
func (p Path[K]) Parent() DirPath {
	return p.ParentN(1)
}

// ParentN returns the directory levels steps above p.
//
// If p is based and the relative part can be shortened by levels segments
// without removing a "..", the result keeps the base. Otherwise the result
// is absolute. The parent of the root is the root.
//
// ParentN panics if levels is not positive.
func (p Path[K]) ParentN(levels int) DirPath {
	if levels <= 0 {
		panic("fspath: ParentN levels must be positive")
	}
	if rel, ok := p.RelativeSegments(); ok &&
		len(rel) >= levels && rel[len(rel)-levels] != path.ParentDir {
		base, _ := p.BaseSegments()
		return Based[DirKind](base, rel[:len(rel)-levels])
	}
	abs := p.AbsoluteSegments()
	return Abs[DirKind](abs[:max(0, len(abs)-levels)]...)
}
