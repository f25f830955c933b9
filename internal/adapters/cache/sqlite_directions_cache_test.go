package cache

import (
	"context"
	"database/sql"
	"route-directions-service/internal/adapters/repositories"
	"testing"

	_ "modernc.org/sqlite"
)

func TestSqliteDirectionsCacheRoundTrip(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}

	ctx := context.Background()
	c := NewSqliteDirectionsCache(db)

	if _, ok, err := c.Get(ctx, "k1"); err != nil || ok {
		t.Fatalf("Get(miss) = ok %v err %v, want false nil", ok, err)
	}

	if err := c.Put(ctx, "k1", "first"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put(ctx, "k1", "second"); err != nil {
		t.Fatalf("Put(replace): %v", err)
	}

	got, ok, err := c.Get(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("Get(hit) = ok %v err %v, want true nil", ok, err)
	}
	if got != "second" {
		t.Fatalf("Get = %q, want %q", got, "second")
	}
}

func TestSqliteDirectionsCacheNilDB(t *testing.T) {
	c := NewSqliteDirectionsCache(nil)
	if _, _, err := c.Get(context.Background(), "k"); err == nil {
		t.Fatalf("Get with nil DB err = nil, want error")
	}
}
