package docset

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// libraryTitleRe matches library chapter headings such as
// "Chapter 30 The unix library: Unix system calls".
var libraryTitleRe = regexp.MustCompile(`^(?:.* )?The ([^ ]+) library(?::.*)?$`)

// ClassifyHeading classifies a page from the stripped text nodes of its
// top-level heading. It never fails; anything it cannot make sense of is
// PageUnrecognized.
func ClassifyHeading(tokens []string) Classification {
	if len(tokens) == 0 {
		return Classification{Kind: PageUnrecognized}
	}

	title := strings.Join(tokens, " ")
	words := strings.Fields(title)
	if len(words) == 0 {
		return Classification{Kind: PageUnrecognized}
	}

	if words[0] == "Module" || words[0] == "Functor" {
		// The name is normally a link of its own: "Module <a>List</a>".
		subject := ""
		if len(tokens) > 1 {
			subject = tokens[1]
		} else if len(words) > 1 {
			subject = words[len(words)-1]
		}
		if subject == "" {
			return Classification{Kind: PageUnrecognized}
		}
		return Classification{Kind: PageModule, Subject: subject}
	}

	if m := libraryTitleRe.FindStringSubmatch(title); m != nil {
		return Classification{Kind: PageLibrary, Subject: m[1]}
	}

	return Classification{Kind: PageUnrecognized}
}

// Declaration is a type or exception declared in a library chapter code block.
type Declaration struct {
	Kind Kind
	Name string
}

// declarationPatterns are tried in order; the first match wins.
var declarationPatterns = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{KindType, regexp.MustCompile(`^type (?:.+ )?([a-zA-Z_][a-zA-Z0-9_]*)$`)},
	{KindException, regexp.MustCompile(`^exception ([a-zA-Z_][a-zA-Z0-9_]*)(?: of .+)?$`)},
}

// ParseDeclaration classifies the normalized text of a code block.
// It reports false for blocks that declare neither a type nor an exception.
func ParseDeclaration(text string) (Declaration, bool) {
	for _, p := range declarationPatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			return Declaration{Kind: p.kind, Name: m[1]}, true
		}
	}
	return Declaration{}, false
}

// Identifier prefixes emitted by the documentation generator for module
// members, in match priority order.
const (
	PrefixTypeElement = "TYPEELT"
	PrefixType        = "TYPE"
	PrefixException   = "EXCEPTION"
	PrefixValue       = "VAL"
)

// ClassifyIdentifier maps an element id of a module page to the symbol it
// documents. containerText is the full text of the element enclosing the
// identified one; it separates functions from plain values. The returned
// rest is the id with its prefix removed. ok is false for ids that do not
// name a symbol.
func ClassifyIdentifier(id, containerText string) (kind Kind, rest string, ok bool) {
	switch {
	case strings.HasPrefix(id, PrefixTypeElement):
		rest = id[len(PrefixTypeElement):]
		if startsLower(rest[strings.LastIndex(rest, ".")+1:]) {
			kind = KindField
		} else {
			kind = KindConstructor
		}
	case strings.HasPrefix(id, PrefixType):
		rest, kind = id[len(PrefixType):], KindType
	case strings.HasPrefix(id, PrefixException):
		rest, kind = id[len(PrefixException):], KindException
	case strings.HasPrefix(id, PrefixValue):
		rest = id[len(PrefixValue):]
		if strings.Contains(containerText, "->") {
			kind = KindFunction
		} else {
			kind = KindValue
		}
	default:
		return "", "", false
	}
	if rest == "" {
		return "", "", false
	}
	return kind, rest, true
}

// startsLower reports whether s begins with a lowercase letter.
func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsLower(r)
}
