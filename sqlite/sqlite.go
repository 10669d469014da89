// Package sqlite provides the SQLite-backed search index of a docset.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db       *sql.DB
	path     string
	readOnly bool
}

// Option configures a DB.
type Option func(*DB)

// WithReadOnly opens an existing database without write access.
// The schema is neither created nor migrated.
func WithReadOnly() Option {
	return func(db *DB) {
		db.readOnly = true
	}
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string, opts ...Option) *DB {
	db := &DB{path: path}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Path returns the database path.
func (db *DB) Path() string {
	return db.path
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	dsn, err := db.dsn()
	if err != nil {
		return fmt.Errorf("failed to resolve database path: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	db.db = conn

	if db.readOnly {
		// Fail early on files that are not docset indexes.
		if _, err := conn.Exec("SELECT 1 FROM searchIndex LIMIT 1"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to read search index: %w", err)
		}
		return nil
	}

	// The rollback journal is kept: documentation browsers open the index
	// read-only and expect a single file without -wal/-shm companions.
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// dsn returns the data source name. Read-only databases are opened through
// a file: URI so that SQLite refuses any write and never creates the file.
func (db *DB) dsn() (string, error) {
	if !db.readOnly || db.path == ":memory:" {
		return db.path, nil
	}
	abs, err := filepath.Abs(db.path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}
	return u.String(), nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the search index if it doesn't exist. Table, column
// and index names follow the docset format read by Dash and Zeal.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS searchIndex (
			id INTEGER PRIMARY KEY,
			name TEXT,
			type TEXT,
			path TEXT
		);

		CREATE UNIQUE INDEX IF NOT EXISTS anchor ON searchIndex (name, type, path);
	`

	_, err := db.db.Exec(schema)
	return err
}
