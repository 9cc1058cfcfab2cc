package fspath_test

import (
	"net/url"
	"testing"

	"lesiw.io/fspath"
)

func TestURL(t *testing.T) {
	ctx, _, _ := testEnv(t)

	tests := []struct {
		p   fspath.Pather
		abs string
		rel string
	}{
		{fspath.Abs[fspath.DirKind]("tmp", "d"),
			"file:///tmp/d/", "file:///tmp/d/"},
		{fspath.Abs[fspath.FileKind]("tmp", "f.txt"),
			"file:///tmp/f.txt", "file:///tmp/f.txt"},
		{fspath.Abs[fspath.DirKind](), "file:///", "file:///"},
		{fspath.MustParse[fspath.DirKind](ctx, "sub"),
			"file:///home/u/project/sub/", "sub/"},
		{fspath.MustParse[fspath.FileKind](ctx, "a b.txt"),
			"file:///home/u/project/a%20b.txt", "a%20b.txt"},
	}
	for _, tt := range tests {
		var u, r *url.URL
		switch p := tt.p.(type) {
		case fspath.DirPath:
			u, r = p.URL(), p.RelativeURL()
		case fspath.FilePath:
			u, r = p.URL(), p.RelativeURL()
		}
		if got := u.String(); got != tt.abs {
			t.Errorf("%v.URL() = %q, want %q", tt.p, got, tt.abs)
		}
		if got := r.String(); got != tt.rel {
			t.Errorf("%v.RelativeURL() = %q, want %q", tt.p, got, tt.rel)
		}
	}
}

func TestFromURL(t *testing.T) {
	tests := []struct {
		url      string
		wantDir  bool
		wantFile bool
		str      string
	}{
		{"file:///tmp/directory1/directory2/", true, false,
			"/tmp/directory1/directory2"},
		{"file:///tmp/file.txt", false, true, "/tmp/file.txt"},
		{"file://localhost/tmp/x", false, true, "/tmp/x"},
		{"file:///", true, false, "/"},
		{"file://example.com/tmp/x", false, false, ""},
		{"http:///tmp/x", false, false, ""},
		{"file:relative/x", false, false, ""},
	}
	for _, tt := range tests {
		u, err := url.Parse(tt.url)
		if err != nil {
			t.Fatal(err)
		}
		d, ok := fspath.FromURL[fspath.DirKind](u)
		if ok != tt.wantDir {
			t.Errorf("FromURL[DirKind](%q) ok = %v, want %v",
				tt.url, ok, tt.wantDir)
		} else if ok && d.String() != tt.str {
			t.Errorf("FromURL[DirKind](%q) = %q, want %q",
				tt.url, d.String(), tt.str)
		}
		f, ok := fspath.FromURL[fspath.FileKind](u)
		if ok != tt.wantFile {
			t.Errorf("FromURL[FileKind](%q) ok = %v, want %v",
				tt.url, ok, tt.wantFile)
		} else if ok && f.String() != tt.str {
			t.Errorf("FromURL[FileKind](%q) = %q, want %q",
				tt.url, f.String(), tt.str)
		}
		_, ok = fspath.FromURL[fspath.AnyKind](u)
		if want := tt.wantDir || tt.wantFile; ok != want {
			t.Errorf("FromURL[AnyKind](%q) ok = %v, want %v",
				tt.url, ok, want)
		}
	}
}

func TestURLRoundTrip(t *testing.T) {
	p := fspath.Abs[fspath.DirKind]("srv", "data set")
	got, ok := fspath.FromURL[fspath.DirKind](p.URL())
	if !ok || !got.Equal(p) {
		t.Errorf("FromURL(%v) = %v, %v; want %v", p.URL(), got, ok, p)
	}
}
