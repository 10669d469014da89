package sqlite

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite only accepts OFFSET after LIMIT, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// rowDigest accumulates an xxHash over index rows.
type rowDigest struct {
	h *xxhash.Digest
}

func newRowDigest() *rowDigest {
	return &rowDigest{h: xxhash.New()}
}

// add hashes one row. Fields are NUL-separated and rows newline-terminated
// so that ("ab", "c") and ("a", "bc") hash differently.
func (d *rowDigest) add(name, typ, path string) {
	_, _ = d.h.WriteString(name)
	_, _ = d.h.WriteString("\x00")
	_, _ = d.h.WriteString(typ)
	_, _ = d.h.WriteString("\x00")
	_, _ = d.h.WriteString(path)
	_, _ = d.h.WriteString("\n")
}

// hex returns the digest as 16 lowercase hex digits.
func (d *rowDigest) hex() string {
	const digits = "0123456789abcdef"
	sum := d.h.Sum64()
	b := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		b[i] = digits[sum&0xf]
		sum >>= 4
	}
	return string(b)
}
