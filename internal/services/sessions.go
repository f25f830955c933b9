package services

import (
	"context"
	"fmt"
	"route-directions-service/internal/directions"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/ports"

	"github.com/google/uuid"
)

// Start a route-building session from a single catalog segment.
func StartSession(
	ctx context.Context,
	catalog ports.SegmentCatalog,
	store ports.RouteSessionStore,
	first SegmentRef,
) (*domain.RouteSession, error) {
	seg, err := ResolveSegment(ctx, catalog, first)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	r, err := domain.NewRoute(seg)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	s, err := store.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return s, nil
}

// Append a catalog segment to the session's route.
// A misoriented segment leaves the session unchanged and returns an error
// wrapping domain.ErrNotContiguous.
func ExtendSession(
	ctx context.Context,
	catalog ports.SegmentCatalog,
	store ports.RouteSessionStore,
	id uuid.UUID,
	next SegmentRef,
) (*domain.RouteSession, error) {
	seg, err := ResolveSegment(ctx, catalog, next)
	if err != nil {
		return nil, fmt.Errorf("extend session %s: %w", id, err)
	}

	s, err := store.Update(ctx, id, func(r domain.Route) (domain.Route, error) {
		return r.Append(seg)
	})
	if err != nil {
		return nil, fmt.Errorf("extend session: %w", err)
	}
	return s, nil
}

// Render directions for the session's current route.
func (rd Renderer) SessionDirections(
	ctx context.Context,
	store ports.RouteSessionStore,
	id uuid.UUID,
	formatter string,
	normalize bool,
	initialHeading *float64,
) (*DirectionsResult, error) {
	lf, err := directions.FormatterByName(formatter, normalize)
	if err != nil {
		return nil, fmt.Errorf("session directions: %w", err)
	}

	s, err := store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("session directions: %w", err)
	}

	return rd.render(ctx, s.Route, formatter, normalize, lf, initialHeading), nil
}

// SessionDirections renders without a cache.
func SessionDirections(
	ctx context.Context,
	store ports.RouteSessionStore,
	id uuid.UUID,
	formatter string,
	normalize bool,
	initialHeading *float64,
) (*DirectionsResult, error) {
	return Renderer{}.SessionDirections(ctx, store, id, formatter, normalize, initialHeading)
}
