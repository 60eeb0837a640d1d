// Command opgen generates the catalog Op constants from the declaration files.
//
// Usage:
//
//	opgen -dir catalog -out ops_gen.go gles2.wit egl.wit
//
// Files are assigned to namespaces in order: the first is GLES2, the second EGL.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/wippyai/glforward/catalog"
)

func main() {
	var (
		dir = flag.String("dir", ".", "Directory holding the declaration files")
		out = flag.String("out", "ops_gen.go", "Output file, relative to -dir")
		pkg = flag.String("pkg", "catalog", "Package name of the generated file")
	)
	flag.Parse()

	if flag.NArg() == 0 || flag.NArg() > len(catalog.Namespaces) {
		fmt.Fprintln(os.Stderr, "Usage: opgen [-dir d] [-out f] gles2.wit [egl.wit]")
		os.Exit(1)
	}

	if err := run(*dir, *out, *pkg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dir, out, pkg string, files []string) error {
	sources := make([]catalog.Source, len(files))
	for i, name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		sources[i] = catalog.Source{Namespace: catalog.Namespaces[i], Text: string(data)}
	}

	cat, err := catalog.Load(catalog.DefaultLayout, sources...)
	if err != nil {
		return fmt.Errorf("load declarations: %w", err)
	}

	src, err := generate(cat, pkg, files)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, out)
	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		return fmt.Errorf("format generated code: %w\n%s", err, src)
	}
	return os.WriteFile(path, formatted, 0o644)
}

func generate(cat *catalog.Catalog, pkg string, files []string) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "// Code generated by opgen from %s; DO NOT EDIT.\n\n", strings.Join(files, ", "))
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	seen := make(map[string]string)
	var all []catalog.Entry
	for _, ns := range catalog.Namespaces {
		entries := cat.Entries(ns)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "// %s operations.\nconst (\n", strings.ToUpper(ns.String()))
		for i, e := range entries {
			id := Ident(e.Name)
			if prev, dup := seen[id]; dup {
				return nil, fmt.Errorf("%s and %s both map to %s", prev, e.Name, id)
			}
			seen[id] = e.Name

			switch {
			case i > 0:
				fmt.Fprintf(&b, "\t%s\n", id)
			case ns == catalog.GLES2:
				fmt.Fprintf(&b, "\t%s Op = iota\n", id)
			default:
				fmt.Fprintf(&b, "\t%s Op = iota + firstEGL\n", id)
			}
		}
		b.WriteString(")\n\n")
		all = append(all, entries...)
	}

	fmt.Fprintf(&b, "const (\n\tfirstEGL Op = %d\n\topCount Op = %d\n)\n\n", cat.Count(catalog.GLES2), len(all))

	b.WriteString("var opNames = [opCount]string{\n")
	for _, e := range all {
		fmt.Fprintf(&b, "\t%s: %q,\n", Ident(e.Name), e.Name)
	}
	b.WriteString("}\n")

	return b.Bytes(), nil
}

// Ident maps a declared name to its exported Go constant:
// glViewport becomes GLViewport, eglGetDisplay becomes EGLGetDisplay.
func Ident(name string) string {
	switch {
	case strings.HasPrefix(name, "egl"):
		return "EGL" + name[3:]
	case strings.HasPrefix(name, "gl"):
		return "GL" + name[2:]
	case name == "":
		return name
	default:
		return strings.ToUpper(name[:1]) + name[1:]
	}
}
