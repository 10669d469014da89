package sqlite

import (
	"context"
	"strings"

	docset "github.com/cypheon/ocaml-docset"
)

// Compile-time interface verification.
var _ docset.EntryService = (*EntryService)(nil)

// EntryService implements docset.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// InsertEntry records an entry. The unique (name, type, path) index turns
// repeated inserts into no-ops. Each insert is its own transaction.
func (s *EntryService) InsertEntry(ctx context.Context, entry *docset.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO searchIndex (name, type, path)
		VALUES (?, ?, ?)
	`, entry.Name, string(entry.Kind), entry.Path)

	return err
}

// FindEntries retrieves entries matching the filter in row order.
func (s *EntryService) FindEntries(ctx context.Context, filter docset.EntryFilter) ([]*docset.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT COALESCE(name, ''), COALESCE(type, ''), COALESCE(path, '') FROM searchIndex WHERE 1=1")

	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Kind != nil {
		query.WriteString(" AND type = ?")
		args = append(args, string(*filter.Kind))
	}

	query.WriteString(" ORDER BY id ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*docset.Entry
	for rows.Next() {
		var entry docset.Entry
		var kind string

		if err := rows.Scan(&entry.Name, &kind, &entry.Path); err != nil {
			return nil, err
		}
		entry.Kind = docset.Kind(kind)

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// Checksum hashes all rows in (name, type, path) order.
func (s *EntryService) Checksum(ctx context.Context) (string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(name, ''), COALESCE(type, ''), COALESCE(path, '')
		FROM searchIndex
		ORDER BY name, type, path
	`)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	d := newRowDigest()
	for rows.Next() {
		var name, typ, path string
		if err := rows.Scan(&name, &typ, &path); err != nil {
			return "", err
		}
		d.add(name, typ, path)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	return d.hex(), nil
}
