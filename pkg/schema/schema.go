// Package schema owns the relational schema of the bible dataset: table
// definitions, creation/teardown, and post-restore sequence maintenance.
package schema

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TableOrder lists every table in foreign-key dependency order. Seed loads
// follow this order; drops run it in reverse.
var TableOrder = []string{
	"testaments",
	"versions",
	"books",
	"verses",
	"book_chapter_verse_counts",
	"reading_lists",
}

// ddl creates the full schema. The UNIQUE constraint on the verse key
// tuple is what guarantees at most one row per reference lookup, and what
// makes a re-import into populated tables fail instead of duplicating.
const ddl = `
CREATE TABLE IF NOT EXISTS testaments (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS versions (
    id SERIAL PRIMARY KEY,
    abbrev TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS books (
    id SERIAL PRIMARY KEY,
    position INTEGER NOT NULL,
    abbrev TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    testament_id INTEGER NOT NULL REFERENCES testaments(id)
);

CREATE TABLE IF NOT EXISTS verses (
    id SERIAL PRIMARY KEY,
    version_id INTEGER NOT NULL REFERENCES versions(id),
    book_id INTEGER NOT NULL REFERENCES books(id),
    chapter INTEGER NOT NULL CHECK (chapter >= 1),
    number INTEGER NOT NULL CHECK (number >= 1),
    text TEXT NOT NULL,
    UNIQUE (version_id, book_id, chapter, number)
);

CREATE TABLE IF NOT EXISTS book_chapter_verse_counts (
    id SERIAL PRIMARY KEY,
    book_id INTEGER NOT NULL REFERENCES books(id),
    chapter INTEGER NOT NULL CHECK (chapter >= 1),
    verse_count INTEGER NOT NULL CHECK (verse_count >= 1),
    UNIQUE (book_id, chapter)
);

CREATE TABLE IF NOT EXISTS reading_lists (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL
);
`

// Create creates all tables if they do not exist
func Create(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Drop removes all tables. Teardown is whole-schema drop/recreate; there
// is no per-table migration path.
func Drop(ctx context.Context, db *sqlx.DB) error {
	for i := len(TableOrder) - 1; i >= 0; i-- {
		stmt := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", TableOrder[i])
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("drop table %s: %w", TableOrder[i], err)
		}
	}
	return nil
}

// ResyncSequences recomputes each table's auto-increment high-water mark
// from MAX(id). Required after restoring from a dump or after a seed load
// that supplies explicit ids.
func ResyncSequences(ctx context.Context, db *sqlx.DB) error {
	for _, table := range TableOrder {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %s",
			table, table,
		)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("resync sequence of %s: %w", table, err)
		}
	}
	return nil
}
