package fspath

import "slices"

// Equal reports whether p and q are the same path.
//
// Two based paths are equal if both their base and relative parts are.
// Two absolute paths are equal if their segments are. A based path is never
// equal to an absolute one, even if both resolve to the same location;
// compare [Path.Absolute] values for that.
func (p Path[K]) Equal(q Path[K]) bool {
	if p.based != q.based {
		return false
	}
	if !p.based {
		return slices.Equal(p.segs, q.segs)
	}
	return p.split == q.split && slices.Equal(p.segs, q.segs)
}

// Compare returns an integer comparing p and q.
// The result is 0 if p.Equal(q), -1 if p sorts before q, and +1 otherwise.
//
// Absolute paths sort before based paths. Absolute paths are ordered by
// their segments, based paths by their base and then their relative part.
func (p Path[K]) Compare(q Path[K]) int {
	switch {
	case !p.based && q.based:
		return -1
	case p.based && !q.based:
		return 1
	case !p.based:
		return slices.Compare(p.segs, q.segs)
	}
	if c := slices.Compare(p.segs[:p.split], q.segs[:q.split]); c != 0 {
		return c
	}
	return slices.Compare(p.segs[p.split:], q.segs[q.split:])
}
