// Package fs provides file-based access to documentation trees and docset
// bundles.
package fs

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	docset "github.com/cypheon/ocaml-docset"
)

// Ensure Dir implements docset.FileSource at compile time.
var _ docset.FileSource = (*Dir)(nil)

// Dir is a documentation tree rooted at a local directory.
type Dir struct {
	root string
}

// NewDir creates a new Dir rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the directory the tree is rooted at.
func (d *Dir) Root() string {
	return d.root
}

// Files returns every regular file below the root, slash-separated and in
// lexical order. Hidden files and directories are skipped.
func (d *Dir) Files(ctx context.Context) ([]string, error) {
	var files []string
	err := filepath.WalkDir(d.root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p != d.root && strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Open opens a file of the tree.
func (d *Dir) Open(name string) (io.ReadCloser, error) {
	full, err := resolve(d.root, name)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// resolve joins a slash-separated relative path onto root, refusing paths
// that would leave it.
func resolve(root, name string) (string, error) {
	clean := path.Clean("/" + name)[1:]
	if clean == "" || clean != name {
		return "", docset.Errorf(docset.EINVALID, "invalid file path %q", name)
	}
	return filepath.Join(root, filepath.FromSlash(clean)), nil
}
