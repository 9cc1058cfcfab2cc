package fspath

// Kind is the type of filesystem item a path denotes.
type Kind uint8

const (
	KindAny Kind = iota
	KindDir
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	}
	return "any"
}

// DirKind marks paths to directories.
type DirKind struct{}

// FileKind marks paths to anything that is not a directory.
type FileKind struct{}

// AnyKind marks paths whose item type is not known.
type AnyKind struct{}

func (DirKind) Kind() Kind  { return KindDir }
func (FileKind) Kind() Kind { return KindFile }
func (AnyKind) Kind() Kind  { return KindAny }

// Kinder is the set of kind markers a [Path] can be instantiated with.
type Kinder interface {
	DirKind | FileKind | AnyKind
	Kind() Kind
}

func kindOf[K Kinder]() Kind {
	var k K
	return k.Kind()
}
