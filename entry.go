package docset

import "context"

// Kind is the category of an indexed symbol. The string value is stored
// verbatim in the search index and used in anchor markers.
type Kind string

// Kind constants understood by documentation browsers.
const (
	KindModule      Kind = "Module"
	KindLibrary     Kind = "Library"
	KindType        Kind = "Type"
	KindException   Kind = "Exception"
	KindField       Kind = "Field"
	KindConstructor Kind = "Constructor"
	KindFunction    Kind = "Function"
	KindValue       Kind = "Value"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindModule, KindLibrary, KindType, KindException,
		KindField, KindConstructor, KindFunction, KindValue:
		return true
	}
	return false
}

// Entry is one record of the search index: a documented symbol and where
// it lives. Path is relative to the documentation root and may carry a
// "#fragment" naming an element inside the page.
type Entry struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	Path string `json:"path"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	if !e.Kind.Valid() {
		return Errorf(EINVALID, "entry %q has unknown kind %q", e.Name, e.Kind)
	}
	if e.Path == "" {
		return Errorf(EINVALID, "entry %q path required", e.Name)
	}
	return nil
}

// EntryService represents a service for managing index entries.
type EntryService interface {
	// InsertEntry records an entry. Inserting an entry whose
	// (name, kind, path) triple is already present is a no-op.
	InsertEntry(ctx context.Context, entry *Entry) error

	// FindEntries retrieves entries matching the filter in insertion order.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// Checksum returns a fingerprint of the full entry set. Two indexes
	// holding the same triples have the same checksum regardless of
	// insertion order.
	Checksum(ctx context.Context) (string, error)
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	Name *string `json:"name"`
	Kind *Kind   `json:"kind"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
