package catalog

import (
	"context"
	"fmt"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/ports"
	"sort"
)

// In-memory implementation of the SegmentCatalog port.
type MemoryCatalog struct {
	entries []domain.CatalogSegment
	byID    map[int]domain.CatalogSegment
}

// Build a catalog from entries. IDs must be unique.
func NewMemoryCatalog(entries []domain.CatalogSegment) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		entries: make([]domain.CatalogSegment, 0, len(entries)),
		byID:    make(map[int]domain.CatalogSegment, len(entries)),
	}
	for _, e := range entries {
		if _, ok := c.byID[e.SegmentID]; ok {
			return nil, fmt.Errorf("memory catalog: duplicate segment_id %d", e.SegmentID)
		}
		c.byID[e.SegmentID] = e
		c.entries = append(c.entries, e)
	}
	sort.Slice(c.entries, func(i, j int) bool { return c.entries[i].SegmentID < c.entries[j].SegmentID })
	return c, nil
}

func (c *MemoryCatalog) ListSegments(ctx context.Context) ([]domain.CatalogSegment, error) {
	out := make([]domain.CatalogSegment, len(c.entries))
	copy(out, c.entries)
	return out, nil
}

func (c *MemoryCatalog) GetSegment(ctx context.Context, id int) (domain.CatalogSegment, error) {
	e, ok := c.byID[id]
	if !ok {
		return domain.CatalogSegment{}, fmt.Errorf("memory catalog: segment_id=%d: %w", id, ports.ErrSegmentNotFound)
	}
	return e, nil
}
