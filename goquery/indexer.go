// Package goquery implements page classification, symbol extraction and
// anchor injection on top of the goquery HTML tree.
package goquery

import (
	"context"
	"io"

	"github.com/PuerkitoBio/goquery"
	docset "github.com/cypheon/ocaml-docset"
)

// Ensure PageIndexer implements docset.PageIndexer at compile time.
var _ docset.PageIndexer = (*PageIndexer)(nil)

// Warnings reported for pages that cannot be classified.
const (
	WarnMissingHeading      = "no h1"
	WarnUnrecognizedHeading = "no module or library heading"
)

// PageIndexer extracts symbols from ocamldoc pages and annotates the pages
// with anchor markers.
type PageIndexer struct {
	naming docset.NamingPolicy
}

// NewPageIndexer creates a new PageIndexer. The naming policy decides which
// auxiliary pages are skipped without a warning.
func NewPageIndexer(naming docset.NamingPolicy) *PageIndexer {
	return &PageIndexer{naming: naming}
}

// IndexPage parses the page, classifies it and runs the module or library
// extractor. The returned result carries the re-serialized page only when
// the tree was changed.
func (ix *PageIndexer) IndexPage(ctx context.Context, path string, r io.Reader) (*docset.PageResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, docset.Errorf(docset.EINVALID, "failed to parse HTML: %v", err)
	}

	p := newPage(path, doc)
	result := &docset.PageResult{Path: path}

	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		if !ix.naming.IsFragment(path) {
			result.Warning = WarnMissingHeading
		}
		return result, nil
	}

	cls := docset.ClassifyHeading(strippedStrings(h1))
	cls.HeadingID, _ = h1.Attr("id")
	result.Classification = cls

	switch cls.Kind {
	case docset.PageModule:
		p.add(cls.Subject, docset.KindModule, path)
		p.extractModule(cls.Subject)
	case docset.PageLibrary:
		libPath := path
		if cls.HeadingID != "" {
			libPath = p.anchor(cls.HeadingID)
		}
		p.add(cls.Subject, docset.KindLibrary, libPath)
		p.extractLibrary()
	default:
		if !ix.naming.IsIndex(path) {
			result.Warning = WarnUnrecognizedHeading
		}
		return result, nil
	}

	result.Entries = p.entries
	result.Mutated = p.mutated
	if p.mutated {
		if result.HTML, err = p.render(); err != nil {
			return nil, err
		}
	}
	return result, nil
}
