package goquery

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	docset "github.com/cypheon/ocaml-docset"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// page is the per-file extraction state. It never outlives one IndexPage call.
type page struct {
	path    string
	doc     *goquery.Document
	ids     docset.IDAllocator
	entries []*docset.Entry
	mutated bool
}

func newPage(path string, doc *goquery.Document) *page {
	return &page{path: path, doc: doc}
}

// anchor returns the page path with an element fragment.
func (p *page) anchor(id string) string {
	return p.path + "#" + id
}

func (p *page) add(name string, kind docset.Kind, path string) {
	p.entries = append(p.entries, &docset.Entry{Name: name, Kind: kind, Path: path})
}

// idFor returns the element's id, assigning the next synthesized one if
// the element has none.
func (p *page) idFor(s *goquery.Selection) string {
	if id, ok := s.Attr("id"); ok {
		return id
	}
	id := p.ids.Next()
	s.SetAttr("id", id)
	p.mutated = true
	return id
}

// injectAnchor inserts an empty anchor marker for (kind, name) as the
// immediately preceding sibling of s.
func (p *page) injectAnchor(s *goquery.Selection, kind docset.Kind, name string) {
	s.BeforeNodes(anchorNode(docset.AnchorRef(kind, name)))
	p.mutated = true
}

func anchorNode(ref string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     atom.A.String(),
		DataAtom: atom.A,
		Attr: []html.Attribute{
			{Key: "name", Val: ref},
			{Key: "class", Val: docset.AnchorClass},
		},
	}
}

// render serializes the whole document, doctype included.
func (p *page) render() ([]byte, error) {
	var buf bytes.Buffer
	for _, n := range p.doc.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", p.path, err)
		}
	}
	return buf.Bytes(), nil
}

// strippedStrings returns the whitespace-trimmed, non-empty text nodes
// under the selection in document order.
func strippedStrings(s *goquery.Selection) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				out = append(out, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return out
}
