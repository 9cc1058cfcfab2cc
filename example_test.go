package fspath_test

import (
	"context"
	"fmt"
	"log"

	"lesiw.io/fspath"
	"lesiw.io/fspath/memfs"
)

func ExampleParse() {
	env := fspath.NewEnv(memfs.New(memfs.WithWorkDir("/home/u/project")))
	ctx := fspath.WithEnv(context.Background(), env)

	p, err := fspath.Parse[fspath.FileKind](ctx, "src/../cmd/main.go")
	if err != nil {
		log.Fatal(err)
	}
	base, _ := p.Base()
	fmt.Println(p)
	fmt.Println(p.AbsoluteString())
	fmt.Println(base)
	fmt.Println(p.Parent())
	// Output:
	// cmd/main.go
	// /home/u/project/cmd/main.go
	// /home/u/project
	// cmd
}

func ExamplePath_RelativeTo() {
	p := fspath.Abs[fspath.FileKind]("a", "b", "x", "y.txt")
	rel := p.RelativeTo(fspath.Abs[fspath.DirKind]("a", "b", "c"))
	fmt.Println(rel)
	fmt.Println(rel.AbsoluteString())
	// Output:
	// ../x/y.txt
	// /a/b/x/y.txt
}

func ExampleAppendFile() {
	dir := fspath.Abs[fspath.DirKind]("srv", "www")
	p, err := fspath.AppendFile(dir, "../logs/access.log")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(p)
	ext, _ := p.Ext()
	fmt.Println(ext)
	// Output:
	// /srv/logs/access.log
	// log
}

func ExampleVerifyInSandbox() {
	env := fspath.NewEnv(memfs.New(memfs.WithWorkDir("/home/u/project")))
	ctx := fspath.WithEnv(context.Background(), env)

	for _, s := range []string{"build/out", "/etc/hosts"} {
		p := fspath.MustParse[fspath.AnyKind](ctx, s)
		fmt.Println(s, fspath.VerifyInSandbox(ctx, p) == nil)
	}
	// Output:
	// build/out true
	// /etc/hosts false
}

func ExampleCreateFile() {
	env := fspath.NewEnv(memfs.New(memfs.WithWorkDir("/home/u/project")))
	ctx := fspath.WithEnv(context.Background(), env)

	p := fspath.MustParse[fspath.FileKind](ctx, "notes/todo.txt")
	f, err := fspath.CreateFile(ctx, p, fspath.ExistsFail)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := f.WriteString("write tests\n"); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	_, err = fspath.CreateFile(ctx, p, fspath.ExistsFail)
	fmt.Println(err)
	data, err := fspath.ReadFile(ctx, p)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
	// Output:
	// notes/todo.txt in /home/u/project already exists
	// write tests
}
