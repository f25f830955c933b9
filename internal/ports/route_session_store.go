package ports

import (
	"context"
	"errors"
	"route-directions-service/internal/domain"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("route session not found")

// Port: storage for in-progress route-building sessions.
//
// Routes are immutable, so a store never edits a Route in place; Update
// swaps the session's Route for the value returned by fn.
type RouteSessionStore interface {
	Create(ctx context.Context, r domain.Route) (*domain.RouteSession, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RouteSession, error)
	// Apply fn to the current Route and store its result. If fn fails the session is unchanged.
	Update(ctx context.Context, id uuid.UUID, fn func(domain.Route) (domain.Route, error)) (*domain.RouteSession, error)
}
