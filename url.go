package fspath

import (
	"net/url"
	"strings"

	"lesiw.io/fspath/path"
)

// FromURL returns the path of a file URL.
//
// It reports false if u is not a local file URL, or if the kind of u does not
// match K: a URL whose path ends with "/" denotes a directory, any other URL
// denotes a file. An [AnyPath] accepts both.
func FromURL[K Kinder](u *url.URL) (Path[K], bool) {
	var zero Path[K]
	if u == nil || u.Scheme != "file" || u.Opaque != "" {
		return zero, false
	}
	if u.Host != "" && u.Host != "localhost" {
		return zero, false
	}
	if !path.IsAbs(u.Path) {
		return zero, false
	}
	switch isDir := path.IsDir(u.Path); kindOf[K]() {
	case KindDir:
		if !isDir {
			return zero, false
		}
	case KindFile:
		if isDir {
			return zero, false
		}
	}
	p := Path[K]{segs: path.Normalize(path.Split(u.Path))}
	if !p.valid() {
		return zero, false
	}
	return p, true
}

// URL returns the absolute location of p as a file URL.
// Directory URLs end with "/".
func (p Path[K]) URL() *url.URL {
	return &url.URL{Scheme: "file", Path: p.urlPath(p.AbsoluteString())}
}

// RelativeURL returns the relative part of p as a relative URL reference,
// or the same as [Path.URL] if p is absolute.
func (p Path[K]) RelativeURL() *url.URL {
	rel, ok := p.RelativeString()
	if !ok {
		return p.URL()
	}
	return &url.URL{Path: p.urlPath(rel)}
}

func (p Path[K]) urlPath(s string) string {
	if p.Kind() == KindDir && !strings.HasSuffix(s, path.Separator) {
		return s + path.Separator
	}
	return s
}
