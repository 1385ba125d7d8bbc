// setup creates (or drops and recreates) the bible schema.
//
// Teardown is whole-database drop/recreate; re-imports start from -drop.
//
// Environment variables:
//   POSTGRES_URI - full connection string, or the DB_* components
//   DB_HOST, DB_PORT, DB_USER, DB_PASS, DB_NAME, DB_SSLMODE
//
// Usage:
//   go run ./scripts/setup           # create tables if missing
//   go run ./scripts/setup -drop     # drop everything, then recreate
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
)

func main() {
	drop := flag.Bool("drop", false, "Drop all tables before creating")
	flag.Parse()

	godotenv.Load()

	ctx := context.Background()
	cfg := config.GetConfig()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if *drop {
		log.Println("Dropping existing tables...")
		if err := schema.Drop(ctx, db); err != nil {
			log.Fatalf("Failed to drop schema: %v", err)
		}
	}

	log.Println("Creating schema...")
	if err := schema.Create(ctx, db); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	log.Println("Schema ready")
}
