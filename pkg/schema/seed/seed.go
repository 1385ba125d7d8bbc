// Package seed bulk-loads the bible dataset from pipe-delimited flat
// files, one file per table, in foreign-key dependency order.
package seed

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// column kinds for row conversion
const (
	kindInt  = 'i'
	kindText = 's'
	kindBool = 'b'
)

// Table describes one seedable table: its columns and their kinds, in the
// order they appear in the flat file.
type Table struct {
	Name    string
	Columns []string
	// Kinds holds one kind rune per column: 'i' integer, 's' text, 'b' bool
	Kinds string
}

// Tables lists every seedable table in foreign-key dependency order.
// The seed file for a table is named "<table>.txt".
var Tables = []Table{
	{Name: "testaments", Columns: []string{"id", "name"}, Kinds: "is"},
	{Name: "versions", Columns: []string{"id", "abbrev", "name", "active"}, Kinds: "issb"},
	{Name: "books", Columns: []string{"id", "position", "abbrev", "name", "testament_id"}, Kinds: "iissi"},
	{Name: "verses", Columns: []string{"id", "version_id", "book_id", "chapter", "number", "text"}, Kinds: "iiiiis"},
	{Name: "book_chapter_verse_counts", Columns: []string{"id", "book_id", "chapter", "verse_count"}, Kinds: "iiii"},
	{Name: "reading_lists", Columns: []string{"id", "title", "content"}, Kinds: "iss"},
}

// ParseRow splits one flat-file line into typed column values for a table.
// Fields are separated by '|'; integer and boolean columns are validated
// here so a malformed row fails before it reaches the store.
func ParseRow(t Table, line string) ([]interface{}, error) {
	fields := strings.Split(line, "|")
	if len(fields) != len(t.Columns) {
		return nil, fmt.Errorf("%s: expected %d fields, got %d", t.Name, len(t.Columns), len(fields))
	}

	values := make([]interface{}, len(fields))
	for i, field := range fields {
		switch t.Kinds[i] {
		case kindInt:
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%s: column %s: invalid integer %q", t.Name, t.Columns[i], field)
			}
			values[i] = n
		case kindBool:
			v, err := strconv.ParseBool(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%s: column %s: invalid boolean %q", t.Name, t.Columns[i], field)
			}
			values[i] = v
		default:
			values[i] = field
		}
	}
	return values, nil
}

// LoadFile bulk-loads one table from its flat file inside a single
// transaction using COPY. The load is all-or-nothing: a malformed row or a
// constraint violation rolls the whole file back. Returns the number of
// rows loaded.
func LoadFile(ctx context.Context, db *sqlx.DB, t Table, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin load of %s: %w", t.Name, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(t.Name, t.Columns...))
	if err != nil {
		return 0, fmt.Errorf("prepare copy into %s: %w", t.Name, err)
	}

	rows := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		values, err := ParseRow(t, line)
		if err != nil {
			stmt.Close()
			return 0, fmt.Errorf("%s line %d: %w", filepath.Base(path), lineNo, err)
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			stmt.Close()
			return 0, fmt.Errorf("copy row into %s: %w", t.Name, err)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		stmt.Close()
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	// Flush the COPY buffer; constraint violations surface here.
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return 0, fmt.Errorf("flush copy into %s: %w", t.Name, err)
	}
	if err := stmt.Close(); err != nil {
		return 0, fmt.Errorf("close copy into %s: %w", t.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit load of %s: %w", t.Name, err)
	}
	return rows, nil
}

// LoadDir loads every table whose seed file exists under dir, in
// foreign-key dependency order. Missing files are skipped so partial
// datasets (e.g. no reading lists) still load. Returns rows loaded per
// table.
func LoadDir(ctx context.Context, db *sqlx.DB, dir string) (map[string]int, error) {
	loaded := make(map[string]int)
	for _, t := range Tables {
		path := filepath.Join(dir, t.Name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		rows, err := LoadFile(ctx, db, t, path)
		if err != nil {
			return loaded, err
		}
		loaded[t.Name] = rows
	}
	return loaded, nil
}
