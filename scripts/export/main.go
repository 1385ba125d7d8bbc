// export dumps every table back into pipe-delimited flat files, producing
// a seed directory that scripts/seed can re-import into a fresh schema.
//
// Environment variables:
//   POSTGRES_URI - full connection string, or the DB_* components
//
// Usage:
//   go run ./scripts/export -dir ./seed
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/biblia-self-hosted-api/pkg/schema/config"
	"github.com/biblia-self-hosted-api/pkg/schema/seed"
)

func main() {
	dir := flag.String("dir", "./seed", "Directory to write seed files into")
	flag.Parse()

	godotenv.Load()

	ctx := context.Background()
	cfg := config.GetConfig()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("Failed to create export directory: %v", err)
	}

	for _, t := range seed.Tables {
		rows, err := exportTable(ctx, db, t, *dir)
		if err != nil {
			log.Fatalf("Failed to export %s: %v", t.Name, err)
		}
		log.Printf("  %s: %d rows", t.Name, rows)
	}

	log.Printf("Export complete: %s", *dir)
}

func exportTable(ctx context.Context, db *sqlx.DB, t seed.Table, dir string) (int, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id",
		strings.Join(t.Columns, ", "), t.Name)

	rows, err := db.QueryxContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", t.Name, err)
	}
	defer rows.Close()

	path := filepath.Join(dir, t.Name+".txt")
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	count := 0
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return 0, fmt.Errorf("scan %s row: %w", t.Name, err)
		}
		fields := make([]string, len(values))
		for i, v := range values {
			fields[i] = formatField(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "|")); err != nil {
			return 0, fmt.Errorf("write %s row: %w", t.Name, err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate %s rows: %w", t.Name, err)
	}

	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("flush %s: %w", path, err)
	}
	return count, nil
}

func formatField(v interface{}) string {
	switch value := v.(type) {
	case []byte:
		return string(value)
	case bool:
		if value {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", value)
	}
}
