package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	docset "github.com/cypheon/ocaml-docset"
)

// extractLibrary indexes the type and exception declarations shown in the
// code blocks of a library chapter. Blocks without an id get a synthesized
// one so the index can point at them.
func (p *page) extractLibrary() {
	p.doc.Find("pre").Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strippedStrings(s), " ")

		decl, ok := docset.ParseDeclaration(text)
		if !ok {
			return
		}

		id := p.idFor(s)
		p.add(decl.Name, decl.Kind, p.anchor(id))
		p.injectAnchor(s, decl.Kind, decl.Name)
	})
}
