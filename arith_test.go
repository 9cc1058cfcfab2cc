package fspath_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lesiw.io/fspath"
)

func TestRelativeTo(t *testing.T) {
	tests := []struct {
		name string
		p    fspath.DirPath
		base fspath.DirPath
		want string
	}{
		{"Sibling", fspath.Abs[fspath.DirKind]("a", "b", "x", "y"),
			fspath.Abs[fspath.DirKind]("a", "b", "c"), "../x/y"},
		{"Child", fspath.Abs[fspath.DirKind]("a", "b"),
			fspath.Abs[fspath.DirKind]("a"), "b"},
		{"Same", fspath.Abs[fspath.DirKind]("a"),
			fspath.Abs[fspath.DirKind]("a"), "."},
		{"Ancestor", fspath.Abs[fspath.DirKind](),
			fspath.Abs[fspath.DirKind]("a", "b"), "../.."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.RelativeTo(tt.base)
			if got.String() != tt.want {
				t.Errorf("RelativeTo() = %q, want %q", got.String(), tt.want)
			}
			if got.AbsoluteString() != tt.p.AbsoluteString() {
				t.Errorf("AbsoluteString() = %q, want %q",
					got.AbsoluteString(), tt.p.AbsoluteString())
			}
			if b, _ := got.Base(); !b.Equal(tt.base) {
				t.Errorf("Base() = %v, want %v", b, tt.base)
			}
		})
	}
}

func TestIsParentOf(t *testing.T) {
	a := fspath.Abs[fspath.DirKind]("a")
	ab := fspath.Abs[fspath.DirKind]("a", "b")
	abc := fspath.Abs[fspath.FileKind]("a", "b", "c")
	tests := []struct {
		dir  fspath.DirPath
		p    fspath.Pather
		want bool
	}{
		{a, ab, true},
		{ab, abc, true},
		{a, abc, true},
		{a, a, false},
		{ab, a, false},
		{a, fspath.Abs[fspath.DirKind]("ab"), false},
		{fspath.DirPath{}, a, true},
		{fspath.DirPath{}, fspath.DirPath{}, false},
	}
	for _, tt := range tests {
		if got := fspath.IsParentOf(tt.dir, tt.p); got != tt.want {
			t.Errorf("IsParentOf(%v, %v) = %v, want %v",
				tt.dir, tt.p, got, tt.want)
		}
	}
}

func TestIsParentOfBased(t *testing.T) {
	ctx, _, _ := testEnv(t)

	wd := fspath.MustParse[fspath.DirKind](ctx, ".")
	sub := fspath.MustParse[fspath.FileKind](ctx, "sub/file")
	up := fspath.MustParse[fspath.FileKind](ctx, "../file")
	if !fspath.IsParentOf(wd, sub) {
		t.Errorf("IsParentOf(%v, %v) = false", wd, sub)
	}
	if fspath.IsParentOf(wd, up) {
		t.Errorf("IsParentOf(%v, %v) = true", wd, up)
	}
}

func TestParent(t *testing.T) {
	ctx, _, _ := testEnv(t)

	tests := []struct {
		name   string
		p      fspath.Pather
		levels int
		want   string
		based  bool
	}{
		{"Abs", fspath.Abs[fspath.FileKind]("a", "b"), 1, "/a", false},
		{"AbsRoot", fspath.Abs[fspath.DirKind](), 1, "/", false},
		{"AbsClamp", fspath.Abs[fspath.DirKind]("a"), 5, "/", false},
		{"Based", fspath.MustParse[fspath.FileKind](ctx, "a/b/c"),
			2, "a", true},
		{"BasedEmpty", fspath.MustParse[fspath.FileKind](ctx, "a"),
			1, ".", true},
		{"BasedExhausted", fspath.MustParse[fspath.DirKind](ctx, "a"),
			2, "/home/u", false},
		{"BasedDotDot", fspath.MustParse[fspath.DirKind](ctx, "../a"),
			2, "/home", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got fspath.DirPath
			switch p := tt.p.(type) {
			case fspath.DirPath:
				got = p.ParentN(tt.levels)
			case fspath.FilePath:
				got = p.ParentN(tt.levels)
			}
			if got.String() != tt.want {
				t.Errorf("ParentN(%d) = %q, want %q",
					tt.levels, got.String(), tt.want)
			}
			if _, ok := got.Base(); ok != tt.based {
				t.Errorf("ParentN(%d) based = %v, want %v",
					tt.levels, ok, tt.based)
			}
		})
	}
}

func TestParentNPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ParentN(0) did not panic")
		}
	}()
	fspath.Abs[fspath.DirKind]("a").ParentN(0)
}

func TestParentAppendRoundTrip(t *testing.T) {
	ctx, _, _ := testEnv(t)

	for _, s := range []string{"a/b", "x", "/abs/dir", "../up"} {
		p := fspath.MustParse[fspath.DirKind](ctx, s)
		got := fspath.AppendDir(p.Parent(), p.Name())
		if got.AbsoluteString() != p.AbsoluteString() {
			t.Errorf("Append(Parent(%q), Name) = %q, want %q",
				s, got.AbsoluteString(), p.AbsoluteString())
		}
	}
}

func TestAppend(t *testing.T) {
	based := fspath.Based[fspath.DirKind]([]string{"x"}, []string{"a"})
	tests := []struct {
		name string
		dir  fspath.DirPath
		s    string
		str  string
		abs  string
	}{
		{"Abs", fspath.Abs[fspath.DirKind]("a"), "b/c", "/a/b/c", "/a/b/c"},
		{"AbsDotDot", fspath.Abs[fspath.DirKind]("a"), "../b", "/b", "/b"},
		{"AbsLeadingSlash", fspath.Abs[fspath.DirKind]("a"), "/b", "/a/b",
			"/a/b"},
		{"Based", based, "b", "a/b", "/x/a/b"},
		{"BasedEscape", based, "../../c", "../c", "/c"},
		{"Empty", based, "", "a", "/x/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fspath.AppendDir(tt.dir, tt.s)
			if got.String() != tt.str {
				t.Errorf("String() = %q, want %q", got.String(), tt.str)
			}
			if got.AbsoluteString() != tt.abs {
				t.Errorf("AbsoluteString() = %q, want %q",
					got.AbsoluteString(), tt.abs)
			}
		})
	}
}

func TestAppendFileMalformed(t *testing.T) {
	dir := fspath.Abs[fspath.DirKind]("a")
	for _, s := range []string{"b/", "..", "../"} {
		_, err := fspath.AppendFile(dir, s)
		var perr *fspath.MalformedPathError
		if !errors.As(err, &perr) {
			t.Errorf("AppendFile(%v, %q) err = %v, want MalformedPathError",
				dir, s, err)
		}
	}
	f, err := fspath.AppendFile(dir, "b/c.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.String(), "/a/b/c.txt"; got != want {
		t.Errorf("AppendFile() = %q, want %q", got, want)
	}
}

func TestJoin(t *testing.T) {
	ctx, _, _ := testEnv(t)
	rel := fspath.MustParse[fspath.FileKind](ctx, "a/b.txt")

	tests := []struct {
		name     string
		dir      fspath.DirPath
		p        fspath.FilePath
		wantBase []string
		wantRel  []string
	}{{
		name:     "absolute dir",
		dir:      fspath.Abs[fspath.DirKind]("base"),
		p:        rel,
		wantBase: []string{"base"},
		wantRel:  []string{"a", "b.txt"},
	}, {
		name:     "absolute operand",
		dir:      fspath.Abs[fspath.DirKind]("a", "b"),
		p:        fspath.Abs[fspath.FileKind]("c"),
		wantBase: []string{"a", "b"},
		wantRel:  []string{"c"},
	}, {
		name:     "based dir",
		dir:      fspath.Based[fspath.DirKind]([]string{"a"}, []string{"b"}),
		p:        fspath.Abs[fspath.FileKind]("c"),
		wantBase: []string{"a", "b"},
		wantRel:  []string{"c"},
	}, {
		name:     "based dir in workdir",
		dir:      fspath.MustParse[fspath.DirKind](ctx, "out"),
		p:        rel,
		wantBase: []string{"home", "u", "project", "out"},
		wantRel:  []string{"a", "b.txt"},
	}, {
		name:     "leading dot-dot",
		dir:      fspath.Abs[fspath.DirKind]("x", "y"),
		p: fspath.Based[fspath.FileKind](
			[]string{"q"}, []string{"..", "z"},
		),
		wantBase: []string{"x", "y"},
		wantRel:  []string{"..", "z"},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fspath.Join(tt.dir, tt.p)
			base, ok := got.BaseSegments()
			if !ok {
				t.Fatalf("Join(%v, %v) = %v, want a based path",
					tt.dir, tt.p, got)
			}
			if diff := cmp.Diff(tt.wantBase, base); diff != "" {
				t.Errorf("Join() base (-want +got):\n%s", diff)
			}
			rel, _ := got.RelativeSegments()
			if diff := cmp.Diff(tt.wantRel, rel); diff != "" {
				t.Errorf("Join() relative (-want +got):\n%s", diff)
			}
		})
	}

	got := fspath.Join(fspath.Abs[fspath.DirKind]("base"), rel)
	if want := "a/b.txt"; got.String() != want {
		t.Errorf("Join().String() = %q, want %q", got.String(), want)
	}
	if want := "/base/a/b.txt"; got.AbsoluteString() != want {
		t.Errorf("Join().AbsoluteString() = %q, want %q",
			got.AbsoluteString(), want)
	}
}

func TestEqual(t *testing.T) {
	ctx, _, _ := testEnv(t)

	based := fspath.MustParse[fspath.DirKind](ctx, "a")
	abs := fspath.Abs[fspath.DirKind]("home", "u", "project", "a")
	other := fspath.Based[fspath.DirKind](
		[]string{"home", "u"}, []string{"project", "a"},
	)
	if based.Equal(abs) {
		t.Errorf("based %v equals absolute %v", based, abs)
	}
	if !based.Absolute().Equal(abs) {
		t.Errorf("Absolute() = %v, want %v", based.Absolute(), abs)
	}
	if based.Equal(other) {
		t.Errorf("%v equals %v with a different base", based, other)
	}
	if !based.Equal(fspath.MustParse[fspath.DirKind](ctx, "./a/")) {
		t.Errorf("%v does not equal itself reparsed", based)
	}
}

func TestCompare(t *testing.T) {
	paths := []fspath.DirPath{
		fspath.Based[fspath.DirKind]([]string{"b"}, []string{"a"}),
		fspath.Abs[fspath.DirKind]("b"),
		fspath.Based[fspath.DirKind]([]string{"a"}, []string{"z"}),
		fspath.Abs[fspath.DirKind]("a", "c"),
		fspath.Abs[fspath.DirKind](),
	}
	slices.SortFunc(paths, fspath.DirPath.Compare)

	var got []string
	for _, p := range paths {
		got = append(got, p.AbsoluteString())
	}
	want := []string{"/", "/a/c", "/b", "/a/z", "/b/a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorted paths (-want +got):\n%s", diff)
	}
	for _, p := range paths {
		if c := p.Compare(p); c != 0 {
			t.Errorf("%v.Compare(itself) = %d", p, c)
		}
	}
}
