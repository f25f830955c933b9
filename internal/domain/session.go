package domain

import (
	"time"

	"github.com/google/uuid"
)

// Represents one route-building session: a caller picks segments one at a
// time and each pick replaces Route with a longer immutable Route.
type RouteSession struct {
	ID        uuid.UUID
	Route     Route
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRouteSession(r Route, now time.Time) *RouteSession {
	return &RouteSession{
		ID:        uuid.New(),
		Route:     r,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
