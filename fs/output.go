package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	docset "github.com/cypheon/ocaml-docset"
)

// Ensure OutputTree implements docset.OutputTree at compile time.
var _ docset.OutputTree = (*OutputTree)(nil)

// OutputTree implements docset.OutputTree with atomic update semantics.
// Files are written to a temporary sibling directory, then moved into
// place on Commit.
type OutputTree struct {
	srcDir string
	dir    string
}

// NewOutputTree creates a new OutputTree mirroring srcDir into dir.
// Files are saved to dir+".tmp" and moved to dir on Commit.
func NewOutputTree(srcDir, dir string) *OutputTree {
	return &OutputTree{
		srcDir: srcDir,
		dir:    filepath.Clean(dir),
	}
}

func (t *OutputTree) tempDir() string {
	return t.dir + ".tmp"
}

// WritePage stores re-serialized page content.
func (t *OutputTree) WritePage(ctx context.Context, name string, data []byte) error {
	fullPath, err := t.prepare(name)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

// CopyFile copies a source file unchanged.
func (t *OutputTree) CopyFile(ctx context.Context, name string) error {
	src, err := resolve(t.srcDir, name)
	if err != nil {
		return err
	}
	fullPath, err := t.prepare(name)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// prepare returns the staging path for name and creates its parent directories.
func (t *OutputTree) prepare(name string) (string, error) {
	fullPath, err := resolve(t.tempDir(), name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	return fullPath, nil
}

// Commit replaces the output directory with the staged tree.
func (t *OutputTree) Commit() error {
	// A run that wrote nothing still yields an (empty) output directory.
	if err := os.MkdirAll(t.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(t.dir); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(t.dir), 0755); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(t.tempDir(), t.dir)
}

// Abort discards the staged tree.
func (t *OutputTree) Abort() error {
	return os.RemoveAll(t.tempDir())
}
