package services

import (
	"context"
	"errors"
	"route-directions-service/internal/adapters/catalog"
	"route-directions-service/internal/adapters/sessions"
	"testing"
)

type mapCache struct {
	entries map[string]string
	gets    int
	puts    int
	failGet bool
}

func (m *mapCache) Get(ctx context.Context, key string) (string, bool, error) {
	m.gets++
	if m.failGet {
		return "", false, errors.New("cache down")
	}
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *mapCache) Put(ctx context.Context, key string, directions string) error {
	m.puts++
	m.entries[key] = directions
	return nil
}

func TestRendererCachesDirections(t *testing.T) {
	ctx := context.Background()
	cache := &mapCache{entries: map[string]string{}}
	rd := Renderer{Cache: cache}
	cat := catalog.NewExampleCatalog()

	req := PlanDirectionsRequest{
		Segments:  []SegmentRef{{SegmentID: 1}, {SegmentID: 2}, {SegmentID: 3}},
		Formatter: "driving",
	}

	first, err := rd.PlanDirections(ctx, req, cat)
	if err != nil {
		t.Fatalf("first plan: %v", err)
	}
	if first.Cached {
		t.Fatalf("first plan Cached = true, want false")
	}

	second, err := rd.PlanDirections(ctx, req, cat)
	if err != nil {
		t.Fatalf("second plan: %v", err)
	}
	if !second.Cached {
		t.Fatalf("second plan Cached = false, want true")
	}
	if second.Directions != first.Directions {
		t.Fatalf("cached directions = %q, want %q", second.Directions, first.Directions)
	}
	if cache.puts != 1 {
		t.Fatalf("puts = %d, want 1", cache.puts)
	}

	// A different formatter is a different entry.
	req.Formatter = "walking"
	third, err := rd.PlanDirections(ctx, req, cat)
	if err != nil {
		t.Fatalf("walking plan: %v", err)
	}
	if third.Cached {
		t.Fatalf("walking plan Cached = true, want false")
	}
}

func TestRendererSharesEntriesBetweenSessionsAndPlans(t *testing.T) {
	ctx := context.Background()
	cache := &mapCache{entries: map[string]string{}}
	rd := Renderer{Cache: cache}
	cat := catalog.NewExampleCatalog()
	store := sessions.NewMemorySessionStore()

	s, err := StartSession(ctx, cat, store, SegmentRef{SegmentID: 1})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if _, err := ExtendSession(ctx, cat, store, s.ID, SegmentRef{SegmentID: 2}); err != nil {
		t.Fatalf("extend session: %v", err)
	}

	if _, err := rd.PlanDirections(ctx, PlanDirectionsRequest{
		Segments:  []SegmentRef{{SegmentID: 1}, {SegmentID: 2}},
		Formatter: "driving",
	}, cat); err != nil {
		t.Fatalf("plan: %v", err)
	}

	res, err := rd.SessionDirections(ctx, store, s.ID, "driving", false, nil)
	if err != nil {
		t.Fatalf("session directions: %v", err)
	}
	if !res.Cached {
		t.Fatalf("session directions Cached = false, want true for an equal route")
	}
}

func TestRendererIgnoresCacheErrors(t *testing.T) {
	cache := &mapCache{entries: map[string]string{}, failGet: true}
	rd := Renderer{Cache: cache}

	res, err := rd.PlanDirections(context.Background(), PlanDirectionsRequest{
		Segments:  []SegmentRef{{SegmentID: 1}},
		Formatter: "driving",
	}, catalog.NewExampleCatalog())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if res.Cached || res.Directions == "" {
		t.Fatalf("result = %+v, want freshly rendered directions", res)
	}
}
