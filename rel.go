package fspath

import (
	"slices"

	"lesiw.io/fspath/path"
)

// RelativeTo returns p expressed relative to base.
//
// The result is based on the absolute location of base. Its relative part
// climbs out of base with ".." for every segment after the first one in which
// the two paths differ, then descends into p:
//
//	/a/b/x/y relative to /a/b/c is ../x/y
//
// This is a pure lexical operation.
func (p Path[K]) RelativeTo(base DirPath) Path[K] {
	targ := p.AbsoluteSegments()
	from := base.AbsoluteSegments()
	i := 0
	for i < len(targ) && i < len(from) && targ[i] == from[i] {
		i++
	}
	rel := make([]string, 0, len(from)-i+len(targ)-i)
	for range len(from) - i {
		rel = append(rel, path.ParentDir)
	}
	rel = append(rel, targ[i:]...)
	return Path[K]{
		segs:  slices.Concat(from, rel),
		split: len(from),
		based: true,
	}
}

// IsParentOf reports whether p is strictly below dir.
//
// Both paths are compared on their absolute segments. A directory is not
// a parent of itself.
func IsParentOf(dir DirPath, p Pather) bool {
	parent, child := dir.AbsoluteSegments(), p.AbsoluteSegments()
	return len(child) > len(parent) &&
		slices.Equal(child[:len(parent)], parent)
}
