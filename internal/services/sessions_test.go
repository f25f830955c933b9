package services

import (
	"context"
	"errors"
	"route-directions-service/internal/adapters/catalog"
	"route-directions-service/internal/adapters/sessions"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/ports"
	"testing"

	"github.com/google/uuid"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	c := catalog.NewExampleCatalog()
	store := sessions.NewMemorySessionStore()

	s, err := StartSession(ctx, c, store, SegmentRef{SegmentID: 1})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	for _, id := range []int{2, 3} {
		if _, err := ExtendSession(ctx, c, store, s.ID, SegmentRef{SegmentID: id}); err != nil {
			t.Fatalf("extend with %d: %v", id, err)
		}
	}

	// Einstein starts at the far end of Trumpeldor Avenue, not at d.
	_, err = ExtendSession(ctx, c, store, s.ID, SegmentRef{SegmentID: 5})
	if !errors.Is(err, domain.ErrNotContiguous) {
		t.Fatalf("err = %v, want ErrNotContiguous", err)
	}

	res, err := SessionDirections(ctx, store, s.ID, "walking", false, nil)
	if err != nil {
		t.Fatalf("directions: %v", err)
	}
	if res.Route.SegmentCount() != 3 {
		t.Fatalf("segments = %d, want 3", res.Route.SegmentCount())
	}

	want := "Continue onto Hanita and walk for 3 minutes.\n" +
		"Turn right onto Trumpeldor Avenue and walk for 2 minutes.\n"
	if res.Directions != want {
		t.Fatalf("directions =\n%s\nwant\n%s", res.Directions, want)
	}
}

func TestSessionErrors(t *testing.T) {
	ctx := context.Background()
	c := catalog.NewExampleCatalog()
	store := sessions.NewMemorySessionStore()

	if _, err := StartSession(ctx, c, store, SegmentRef{SegmentID: 404}); !errors.Is(err, ports.ErrSegmentNotFound) {
		t.Fatalf("err = %v, want ErrSegmentNotFound", err)
	}
	if _, err := ExtendSession(ctx, c, store, uuid.New(), SegmentRef{SegmentID: 1}); !errors.Is(err, ports.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
	if _, err := SessionDirections(ctx, store, uuid.New(), "driving", false, nil); !errors.Is(err, ports.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}
