// Package ledger provides the SQLite-backed import ledger. It records
// which source note owns which slug, so re-processing a note resolves to
// its original page and a colliding title gets a fresh suffix.
//
// The ledger is advisory for change detection (the managed page's own
// mtime decides staleness); losing it never corrupts the notebook, it only
// forgets slug ownership until pages are adopted again.
package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS imports (
	source_path TEXT PRIMARY KEY,
	slug        TEXT NOT NULL UNIQUE,
	title       TEXT NOT NULL DEFAULT '',
	imported_at DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_imports_slug ON imports(slug);
`

// DB wraps a sql.DB with ledger-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite ledger and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ledger: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ledger: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ledger: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Record upserts the slug ownership for one source note. The first insert
// sets imported_at; later imports of the same note only move updated_at.
func (db *DB) Record(sourcePath, slug, title string, when time.Time) error {
	_, err := db.conn.Exec(`
		INSERT INTO imports (source_path, slug, title, imported_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(source_path) DO UPDATE SET
			slug = excluded.slug,
			title = excluded.title,
			updated_at = excluded.updated_at`,
		sourcePath, slug, title, when.UTC(), when.UTC())
	if err != nil {
		return fmt.Errorf("ledger: record %s: %w", sourcePath, err)
	}
	return nil
}

// slugFor returns the slug recorded for a source note, if any.
func (db *DB) slugFor(sourcePath string) (string, bool, error) {
	var slug string
	err := db.conn.QueryRow(`SELECT slug FROM imports WHERE source_path = ?`, sourcePath).Scan(&slug)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("ledger: slug for %s: %w", sourcePath, err)
	}
	return slug, true, nil
}

// Owners returns the full slug → source path mapping.
func (db *DB) Owners() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT slug, source_path FROM imports`)
	if err != nil {
		return nil, fmt.Errorf("ledger: owners: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var slug, src string
		if err := rows.Scan(&slug, &src); err != nil {
			return nil, fmt.Errorf("ledger: scan owners: %w", err)
		}
		out[slug] = src
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger: owners rows: %w", err)
	}
	return out, nil
}
