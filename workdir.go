package fspath

import "context"

// A WorkDirFS is a file system with a working directory.
type WorkDirFS interface {
	FS

	// Getwd returns the absolute path of the working directory.
	Getwd(ctx context.Context) (string, error)

	// Chdir changes the working directory to the named directory.
	Chdir(ctx context.Context, name string) error
}

// A HomeFS is a file system with a home directory.
type HomeFS interface {
	FS

	// Home returns the absolute path of the home directory
	// of the current user.
	Home(ctx context.Context) (string, error)
}

// Getwd returns the working directory of fsys.
// Analogous to: [os.Getwd], pwd.
//
// Requires: [WorkDirFS]
func Getwd(ctx context.Context, fsys FS) (string, error) {
	if wfs, ok := fsys.(WorkDirFS); ok {
		dir, err := wfs.Getwd(ctx)
		return dir, newPathError("getwd", ".", err)
	}
	return "", &PathError{Op: "getwd", Path: ".", Err: ErrUnsupported}
}

// Chdir changes the working directory of fsys.
// Analogous to: [os.Chdir], cd.
//
// Requires: [WorkDirFS]
func Chdir(ctx context.Context, fsys FS, name string) error {
	if wfs, ok := fsys.(WorkDirFS); ok {
		return newPathError("chdir", name, wfs.Chdir(ctx, name))
	}
	return &PathError{Op: "chdir", Path: name, Err: ErrUnsupported}
}

// Home returns the home directory of fsys.
// Analogous to: [os.UserHomeDir], echo ~.
//
// Requires: [HomeFS]
func Home(ctx context.Context, fsys FS) (string, error) {
	if hfs, ok := fsys.(HomeFS); ok {
		dir, err := hfs.Home(ctx)
		return dir, newPathError("home", "~", err)
	}
	return "", &PathError{Op: "home", Path: "~", Err: ErrUnsupported}
}
