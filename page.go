package docset

import (
	"context"
	"io"
	"path"
	"strings"
)

// PageKind classifies a documentation page by its top-level heading.
type PageKind int

const (
	PageUnrecognized PageKind = iota
	PageModule                // module, module type or functor
	PageLibrary               // library chapter
)

// String returns a lowercase name for the page kind.
func (k PageKind) String() string {
	switch k {
	case PageModule:
		return "module"
	case PageLibrary:
		return "library"
	default:
		return "unrecognized"
	}
}

// Classification is the outcome of inspecting a page's top-level heading.
type Classification struct {
	Kind PageKind

	// Subject is the module, functor or library name.
	// Empty when Kind is PageUnrecognized.
	Subject string

	// HeadingID is the id attribute of the top-level heading, if any.
	HeadingID string
}

// PageResult holds everything discovered while indexing one page.
type PageResult struct {
	// Path is the page path relative to the documentation root,
	// slash-separated.
	Path string

	Classification Classification

	// Entries are the symbols found on the page in document order,
	// including the whole-page Module or Library entry.
	Entries []*Entry

	// Mutated reports whether ids were assigned or anchors injected.
	Mutated bool

	// HTML is the re-serialized page. Set only when Mutated is true.
	HTML []byte

	// Warning describes a structural problem that caused the page to be
	// skipped. Empty when the page was recognized or the warning was
	// suppressed by the naming policy.
	Warning string
}

// PageIndexer classifies a page, extracts its symbols and annotates it
// with anchor markers.
type PageIndexer interface {
	// IndexPage parses the page read from r. The path is used both for
	// the naming policy and as the path of every produced entry.
	IndexPage(ctx context.Context, path string, r io.Reader) (*PageResult, error)
}

// FileSource enumerates and opens the files of a documentation tree.
type FileSource interface {
	// Files returns slash-separated paths relative to the tree root in a
	// stable, lexical order.
	Files(ctx context.Context) ([]string, error)

	// Open opens a file returned by Files.
	Open(path string) (io.ReadCloser, error)
}

// OutputTree receives the annotated documentation tree.
// Writes are staged; Commit makes them permanent and Abort discards them.
type OutputTree interface {
	// WritePage stores re-serialized page content at path.
	WritePage(ctx context.Context, path string, data []byte) error

	// CopyFile copies a source file to path unchanged.
	CopyFile(ctx context.Context, path string) error

	Commit() error
	Abort() error
}

// IsHTML reports whether the path names an HTML page.
func IsHTML(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".html", ".htm":
		return true
	}
	return false
}
