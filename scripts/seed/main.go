// seed bulk-loads pipe-delimited flat files into the bible schema.
//
// Files are named after their table (testaments.txt, versions.txt,
// books.txt, verses.txt, book_chapter_verse_counts.txt, reading_lists.txt)
// and load in foreign-key dependency order. Each file loads in a single
// transaction via COPY: a malformed row aborts that table's load.
// Loading into already-populated tables fails on unique constraints;
// clear the tables first (scripts/setup -drop) to re-import.
//
// Environment variables:
//   POSTGRES_URI - full connection string, or the DB_* components
//
// Usage:
//   go run ./scripts/seed -dir ./seed
package main

import (
	"context"
	"flag"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/biblia-self-hosted-api/pkg/schema"
	"github.com/biblia-self-hosted-api/pkg/schema/config"
	"github.com/biblia-self-hosted-api/pkg/schema/seed"
)

func main() {
	dir := flag.String("dir", "./seed", "Directory containing seed files")
	flag.Parse()

	godotenv.Load()

	ctx := context.Background()
	cfg := config.GetConfig()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Printf("Loading seed files from %s", *dir)

	loaded, err := seed.LoadDir(ctx, db, *dir)
	for table, rows := range loaded {
		log.Printf("  %s: %d rows", table, rows)
	}
	if err != nil {
		log.Fatalf("Seed load failed: %v", err)
	}

	// Seed files carry explicit ids, so the serial sequences lag behind.
	if err := schema.ResyncSequences(ctx, db); err != nil {
		log.Fatalf("Failed to resync sequences: %v", err)
	}

	log.Println("Seed load complete")
}
