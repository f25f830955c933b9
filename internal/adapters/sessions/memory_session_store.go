package sessions

import (
	"context"
	"fmt"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/ports"
	"sync"
	"time"

	"github.com/google/uuid"
)

// In-memory implementation of the RouteSessionStore port.
// Sessions live for the lifetime of the process.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]domain.RouteSession
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[uuid.UUID]domain.RouteSession),
		now:      time.Now,
	}
}

func (m *MemorySessionStore) Create(ctx context.Context, r domain.Route) (*domain.RouteSession, error) {
	if r.IsZero() {
		return nil, fmt.Errorf("create session: %w", domain.ErrZeroRoute)
	}

	s := domain.NewRouteSession(r, m.now())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s

	out := *s
	return &out, nil
}

func (m *MemorySessionStore) Get(ctx context.Context, id uuid.UUID) (*domain.RouteSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("get session %s: %w", id, ports.ErrSessionNotFound)
	}
	return &s, nil
}

// Update holds the write lock while fn runs so that concurrent appends to
// one session are applied one after another. fn must not call back into the store.
func (m *MemorySessionStore) Update(
	ctx context.Context,
	id uuid.UUID,
	fn func(domain.Route) (domain.Route, error),
) (*domain.RouteSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("update session %s: %w", id, ports.ErrSessionNotFound)
	}

	next, err := fn(s.Route)
	if err != nil {
		return nil, fmt.Errorf("update session %s: %w", id, err)
	}

	s.Route = next
	s.UpdatedAt = m.now()
	m.sessions[id] = s
	return &s, nil
}
