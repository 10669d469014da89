package docset

import (
	"fmt"
	"strings"
)

// AnchorPrefix starts every anchor marker reference. Documentation
// browsers match on this exact string.
const AnchorPrefix = "//apple_ref/cpp/"

// AnchorClass is the class attribute carried by injected anchor markers.
const AnchorClass = "dashAnchor"

// AnchorRef returns the marker reference for a symbol, e.g.
// "//apple_ref/cpp/Function/map". The name is percent-encoded so that
// only unreserved characters survive; "/" is always escaped.
func AnchorRef(kind Kind, name string) string {
	return AnchorPrefix + string(kind) + "/" + escapeName(name)
}

const upperhex = "0123456789ABCDEF"

// escapeName percent-encodes every byte outside A-Z a-z 0-9 and "_.-~".
func escapeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '.', c == '-', c == '~':
		return true
	}
	return false
}

// AutoIDPrefix starts every synthesized element id.
const AutoIDPrefix = "autoid_"

// IDAllocator hands out sequential element ids for a single page:
// autoid_0000, autoid_0001, ... The counter is hexadecimal.
// The zero value is ready to use; allocate one per page.
type IDAllocator struct {
	next int
}

// Next returns the next unused id.
func (a *IDAllocator) Next() string {
	id := fmt.Sprintf("%s%04x", AutoIDPrefix, a.next)
	a.next++
	return id
}
