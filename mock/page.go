package mock

import (
	"context"
	"io"

	docset "github.com/cypheon/ocaml-docset"
)

var _ docset.PageIndexer = (*PageIndexer)(nil)

// PageIndexer is a mock implementation of docset.PageIndexer.
type PageIndexer struct {
	IndexPageFn func(ctx context.Context, path string, r io.Reader) (*docset.PageResult, error)
}

func (p *PageIndexer) IndexPage(ctx context.Context, path string, r io.Reader) (*docset.PageResult, error) {
	return p.IndexPageFn(ctx, path, r)
}

var _ docset.FileSource = (*FileSource)(nil)

// FileSource is a mock implementation of docset.FileSource.
type FileSource struct {
	FilesFn func(ctx context.Context) ([]string, error)
	OpenFn  func(path string) (io.ReadCloser, error)
}

func (s *FileSource) Files(ctx context.Context) ([]string, error) {
	return s.FilesFn(ctx)
}

func (s *FileSource) Open(path string) (io.ReadCloser, error) {
	return s.OpenFn(path)
}

var _ docset.OutputTree = (*OutputTree)(nil)

// OutputTree is a mock implementation of docset.OutputTree.
type OutputTree struct {
	WritePageFn func(ctx context.Context, path string, data []byte) error
	CopyFileFn  func(ctx context.Context, path string) error
	CommitFn    func() error
	AbortFn     func() error
}

func (t *OutputTree) WritePage(ctx context.Context, path string, data []byte) error {
	return t.WritePageFn(ctx, path, data)
}

func (t *OutputTree) CopyFile(ctx context.Context, path string) error {
	return t.CopyFileFn(ctx, path)
}

func (t *OutputTree) Commit() error {
	return t.CommitFn()
}

func (t *OutputTree) Abort() error {
	return t.AbortFn()
}
