package main

import (
	"database/sql"
	"flag"
	"log"
	"route-directions-service/internal/adapters/repositories"
	"route-directions-service/internal/config"
	"route-directions-service/internal/platform/db"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// dbtool creates the catalog schema and loads seed segments.
// Postgres is used when DATABASE_URL is set, SQLite at DB_PATH otherwise.
func main() {
	if !config.LoadDotEnv() {
		log.Println("No .env file found (using environment variables)")
	}

	seedPath := flag.String("seed", config.Get("SEED_PATH", "data/seeds/segments.json"), "JSON seed file")
	flag.Parse()

	sqlDB, dialect, err := open()
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := initAndSeed(sqlDB, *seedPath, dialect); err != nil {
		log.Fatal(err)
	}
}

func open() (*sql.DB, repositories.Dialect, error) {
	if databaseURL := config.Get("DATABASE_URL", ""); strings.TrimSpace(databaseURL) != "" {
		sqlDB, err := db.Open(databaseURL)
		return sqlDB, repositories.Postgres, err
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	log.Printf("DATABASE_URL not set, using sqlite path=%s", dbPath)
	sqlDB, err := db.OpenSQLite(dbPath)
	return sqlDB, repositories.SQLite, err
}

func initAndSeed(sqlDB *sql.DB, seedPath string, dialect repositories.Dialect) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(sqlDB); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database from %s...", seedPath)
	if err := repositories.SeedFromJSON(sqlDB, seedPath, dialect); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
