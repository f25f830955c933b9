package db

import (
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestOpenSQLite(t *testing.T) {
	sqlDB, err := OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestOpenSQLiteFailsForMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "app.db")
	sqlDB, err := OpenSQLite(path)
	if err == nil {
		sqlDB.Close()
		t.Fatalf("expected error for %q", path)
	}
	if sqlDB != nil {
		t.Fatalf("db = %v, want nil on error", sqlDB)
	}
}
