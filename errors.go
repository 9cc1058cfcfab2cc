package fspath

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors reported by paths and handles.
var (
	ErrMalformedPath  = errors.New("malformed path")
	ErrOutsideSandbox = errors.New("outside sandbox")
	ErrIsDir          = errors.New("is a directory")
	ErrNotDir         = errors.New("not a directory")
	ErrCouldNotCreate = errors.New("could not create")
)

// MalformedPathError reports a string that cannot be parsed
// into the requested kind of path.
type MalformedPathError struct {
	Path   string
	Reason string
}

func (e *MalformedPathError) Error() string {
	return "malformed path " + strconv.Quote(e.Path) + ": " + e.Reason
}

func (e *MalformedPathError) Unwrap() error { return ErrMalformedPath }

// OutsideSandboxError reports a change to the filesystem that was refused
// because Path is not below WorkDir.
type OutsideSandboxError struct {
	Path    Pather
	WorkDir DirPath
}

func (e *OutsideSandboxError) Error() string {
	return fmt.Sprintf(
		"%s is not in the current working directory %s; "+
			"disable the sandbox to change the filesystem outside of it",
		e.Path.AbsoluteString(), e.WorkDir.String(),
	)
}

func (e *OutsideSandboxError) Unwrap() error { return ErrOutsideSandbox }

// OpError records a failed handle operation on a typed path.
//
// The message describes the path the way it was given, followed by its base
// directory if it has one, so that relative paths remain auditable.
type OpError struct {
	Op   string
	Path Pather
	Err  error
}

func (e *OpError) Error() string {
	loc := location(e.Path)
	switch {
	case errors.Is(e.Err, ErrOutsideSandbox):
		return e.Err.Error()
	case errors.Is(e.Err, ErrCouldNotCreate):
		return "could not create " + kindName(e.Path) + " " + loc
	case errors.Is(e.Err, ErrExist):
		return loc + " already exists"
	case errors.Is(e.Err, ErrNotExist):
		return kindName(e.Path) + " " + loc + " does not exist"
	case errors.Is(e.Err, ErrIsDir):
		return loc + " is a directory, expected a file"
	case errors.Is(e.Err, ErrNotDir):
		return loc + " is not a directory"
	case errors.Is(e.Err, ErrPermission):
		if e.Op == "open" || e.Op == "list" {
			return "could not access " + loc
		}
		return "could not access " + loc + " for writing"
	}
	return e.Op + " " + loc + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

func location(p Pather) string {
	if base, ok := p.BaseSegments(); ok {
		return p.String() + " in " + Abs[DirKind](base...).String()
	}
	return p.String()
}

func kindName(p Pather) string {
	switch p.Kind() {
	case KindDir:
		return "directory"
	case KindFile:
		return "file"
	}
	return "item"
}
