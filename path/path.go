// Package path implements the lexical segment algebra used by typed paths.
//
// A path string is split on "/" into segments. Normalization removes empty
// and "." segments and collapses every concrete segment that is immediately
// followed by "..". A ".." that has no concrete predecessor is kept: it
// refers to an unresolved location above the known root.
//
//	path.Normalize([]string{"a", "..", "b"})       // ["b"]
//	path.Normalize([]string{"..", "a"})            // ["..", "a"]
//	path.Normalize([]string{"a", "b", "..", "..", "c"}) // ["c"]
//
// All operations are purely lexical. They do not access the filesystem or
// account for symbolic links. Only POSIX "/" separated paths are supported.
package path

import (
	stdpath "path"
	"slices"
	"strings"
)

const (
	Separator = "/"
	SelfDir   = "."
	ParentDir = ".."
	HomeDir   = "~"
)

// Split splits s on the separator without any cleaning.
// The empty string splits into a single empty segment.
func Split(s string) []string {
	return strings.Split(s, Separator)
}

// Normalize filters empty and "." segments and collapses dot-dots.
// The result contains ".." only as a leading run. The input is not modified.
func Normalize(segs []string) []string {
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		if s == "" || s == SelfDir {
			continue
		}
		out = append(out, s)
	}
	return collapse(out)
}

// Collapse removes every concrete segment immediately followed by "..".
// Leading ".." segments are preserved. The input is not modified.
func Collapse(segs []string) []string {
	return collapse(slices.Clone(segs))
}

// collapse works in place.
func collapse(segs []string) []string {
	first := slices.Index(segs, ParentDir)
	if first < 0 {
		return segs
	}
	i := max(1, first)
	for i < len(segs) {
		if segs[i] == ParentDir && segs[i-1] != ParentDir {
			segs = slices.Delete(segs, i-1, i+1)
			i = max(1, i-1)
			continue
		}
		i++
	}
	return segs
}

// Parse splits and normalizes s.
//
// The empty string is treated as ".". A leading separator makes the result
// absolute. A leading "~" segment is dropped and reported as relative=false
// so the caller can prefix the home directory; see [IsHome]. Anything else
// is relative.
func Parse(s string) (segs []string, relative bool) {
	if s == "" {
		s = SelfDir
	}
	raw := Split(s)
	switch raw[0] {
	case "":
		return Normalize(raw), false
	case HomeDir:
		return Normalize(raw[1:]), false
	default:
		return Normalize(raw), true
	}
}

// IsHome reports whether s begins with a "~" segment.
func IsHome(s string) bool {
	return s == HomeDir || strings.HasPrefix(s, HomeDir+Separator)
}

// IsAbs reports whether s begins with the separator.
func IsAbs(s string) bool {
	return strings.HasPrefix(s, Separator)
}

// IsDir reports whether s lexically denotes a directory,
// that is whether it ends with the separator.
func IsDir(s string) bool {
	return strings.HasSuffix(s, Separator)
}

// Join joins segments with the separator. No segments render as ".".
func Join(segs []string) string {
	if len(segs) == 0 {
		return SelfDir
	}
	return strings.Join(segs, Separator)
}

// JoinAbs renders segments as an absolute path.
// No segments render as the root "/".
func JoinAbs(segs []string) string {
	return Separator + strings.Join(segs, Separator)
}

// Ext returns the extension of name, without the dot.
//
// The extension starts after the last "." that is neither the first nor the
// last character of name. If there is no such dot, ok is false.
//
//	path.Ext("file.tar.gz") // "gz", true
//	path.Ext(".hidden")     // "", false
//	path.Ext("file.")       // "", false
func Ext(name string) (ext string, ok bool) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}

// TrimExt returns name without its last ".suffix".
// A dot in first position is never treated as an extension separator,
// but a trailing dot is removed.
//
//	path.TrimExt("file.tar.gz") // "file.tar"
//	path.TrimExt(".hidden")     // ".hidden"
//	path.TrimExt("file.txt.")   // "file.txt"
func TrimExt(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return name
	}
	return name[:i]
}

// HasMeta reports whether s contains any of the magic characters
// recognized by [Match].
func HasMeta(s string) bool {
	return strings.ContainsAny(s, `*?[\`)
}

// Match reports whether name matches the shell pattern.
// The pattern syntax is the same as in path.Match from the standard library.
// This is an alias to avoid importing both packages.
func Match(pattern, name string) (matched bool, err error) {
	return stdpath.Match(pattern, name)
}

// ErrBadPattern indicates a pattern was malformed.
// This is an alias to avoid importing both packages.
var ErrBadPattern = stdpath.ErrBadPattern
