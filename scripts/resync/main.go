// resync recomputes each table's auto-increment high-water mark from
// MAX(id). Run it after restoring the database from a full dump.
//
// Environment variables:
//   POSTGRES_URI - full connection string, or the DB_* components
//
// Usage:
//   go run ./scripts/resync
package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/biblia-self-hosted-api/pkg/schema"
	"github.com/biblia-self-hosted-api/pkg/schema/config"
)

func main() {
	godotenv.Load()

	ctx := context.Background()
	cfg := config.GetConfig()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := schema.ResyncSequences(ctx, db); err != nil {
		log.Fatalf("Failed to resync sequences: %v", err)
	}

	log.Println("Sequences resynchronized")
}
