package goquery

import (
	"github.com/PuerkitoBio/goquery"
	docset "github.com/cypheon/ocaml-docset"
)

// extractModule indexes the members of a module or functor page. Every
// element id following the generator's TYPEELT/TYPE/EXCEPTION/VAL naming
// scheme names one symbol; the marker goes before the enclosing element,
// which holds the full declaration.
func (p *page) extractModule(module string) {
	p.doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")

		container := s.Parent()
		if container.Length() == 0 {
			container = s
		}

		kind, rest, ok := docset.ClassifyIdentifier(id, container.Text())
		if !ok {
			return
		}

		p.add(module+"."+rest, kind, p.anchor(id))
		p.injectAnchor(container, kind, rest)
	})
}
