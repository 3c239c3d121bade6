package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"launchdash/adapters/postgres"
	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/migration"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// seed copies a launch records file into the postgres table the dashboard
// reads with DATASET_SOURCE=postgres
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	file := flag.String("file", envOr("DATASET_FILE", config.DefaultDatasetFile), "CSV or XLSX launch records file")
	table := flag.String("table", envOr("DATASET_TABLE", "launch_records"), "destination table")
	databaseURL := flag.String("database-url", os.Getenv("DATABASE_URL"), "postgres connection string")
	flag.Parse()

	if *databaseURL == "" {
		log.Fatal("Usage: seed -database-url <url> [-file spacex_launch_dash.csv] [-table launch_records]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Validate the whole file before touching the database
	ds, err := dataset.LoadFile(*file)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *file, err)
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", *databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	migrator, err := migration.NewRunner(*table)
	if err != nil {
		log.Fatalf("Invalid table: %v", err)
	}
	if err := migrator.Run(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	repo, err := postgres.NewLaunchRepository(db, *table)
	if err != nil {
		log.Fatalf("Failed to create repository: %v", err)
	}
	if err := repo.ReplaceRecords(ctx, ds.Records()); err != nil {
		log.Fatalf("Failed to store records: %v", err)
	}

	log.Printf("Seeded %d launch records from %s into %s", ds.Len(), *file, repo.Describe())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
