package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"route-directions-service/internal/domain"
	"strings"
)

// SQL placeholder flavor of the target database.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Return the placeholder for the n-th (1-based) bound argument.
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (d Dialect) placeholders(count int) string {
	ph := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		ph = append(ph, d.Placeholder(i))
	}
	return strings.Join(ph, ", ")
}

// Initialize the segment catalog and directions cache schema. The statements are valid for both SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Coordinates are stored in millionths of a degree so points compare exactly.
	createSegmentsQuery := `
	CREATE TABLE IF NOT EXISTS segments (
		segment_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat1 INTEGER NOT NULL,
		lon1 INTEGER NOT NULL,
		lat2 INTEGER NOT NULL,
		lon2 INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_segments_start
	ON segments(lat1, lon1);
	`

	createDirectionsCacheQuery := `
	CREATE TABLE IF NOT EXISTS directions_cache (
		cache_key TEXT PRIMARY KEY,
		directions TEXT NOT NULL
	);
	`

	statements := []string{
		createSegmentsQuery,
		createIndexQuery,
		createDirectionsCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the segments table from a JSON seed file.
func SeedFromJSON(db *sql.DB, jsonPath string, dialect Dialect) error {
	if db == nil {
		return errors.New("seed segments: DB is nil")
	}

	rows, err := LoadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed segments: %w", err)
	}

	return UpsertSegments(db, rows, dialect)
}

// Insert or replace catalog rows in a single transaction.
func UpsertSegments(db *sql.DB, rows []domain.CatalogSegment, dialect Dialect) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed segments: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO segments (
		segment_id,
		name,
		lat1,
		lon1,
		lat2,
		lon2
	)
	VALUES (%s)
	ON CONFLICT (segment_id) DO UPDATE
	SET name = EXCLUDED.name,
		lat1 = EXCLUDED.lat1,
		lon1 = EXCLUDED.lon1,
		lat2 = EXCLUDED.lat2,
		lon2 = EXCLUDED.lon2;
	`, dialect.placeholders(6))

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed segments: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		s := row.Segment
		if _, err := stmt.Exec(
			row.SegmentID,
			s.Name(),
			s.P1().LatMicro(), s.P1().LonMicro(),
			s.P2().LatMicro(), s.P2().LonMicro(),
		); err != nil {
			return fmt.Errorf("seed segments: insert segment_id=%d: %w", row.SegmentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed segments: commit tx: %w", err)
	}

	return nil
}
