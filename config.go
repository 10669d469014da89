package docset

import (
	"path"
	"strings"
)

// Config holds the settings of a docset build.
type Config struct {
	// Concurrency bounds the number of pages processed at once.
	// Zero or less selects a default.
	Concurrency int

	Bundle Bundle
	Naming NamingPolicy
}

// Bundle describes the docset bundle written to Info.plist.
type Bundle struct {
	Name       string
	Identifier string
	Platform   string
	IndexPage  string
}

// NamingPolicy recognizes auxiliary pages of the documentation generator
// by filename prefix. Structural warnings for such pages are suppressed.
type NamingPolicy struct {
	// FragmentPrefixes match type-definition fragment pages, which have
	// no top-level heading.
	FragmentPrefixes []string

	// IndexPrefixes match generated index pages, whose headings are
	// neither module nor library titles.
	IndexPrefixes []string
}

// IsFragment reports whether the page at p is a known fragment page.
func (n NamingPolicy) IsFragment(p string) bool {
	return hasAnyPrefix(path.Base(p), n.FragmentPrefixes)
}

// IsIndex reports whether the page at p is a known index page.
func (n NamingPolicy) IsIndex(p string) bool {
	return hasAnyPrefix(path.Base(p), n.IndexPrefixes)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// DefaultConfig returns the settings for the OCaml manual and stdlib
// reference as produced by ocamldoc.
func DefaultConfig() Config {
	return Config{
		Bundle: Bundle{
			Name:       "OCaml",
			Identifier: "ocaml",
			Platform:   "ocaml",
			IndexPage:  "index.html",
		},
		Naming: NamingPolicy{
			FragmentPrefixes: []string{"type_"},
			IndexPrefixes:    []string{"index"},
		},
	}
}
