package ports

import (
	"context"
	"route-directions-service/internal/domain"
)

// Optional extension of SegmentCatalog that supports batched lookups.
type SegmentBatchCatalog interface {
	SegmentCatalog
	// Return the segments for ids keyed by id. Unknown ids are omitted.
	GetMany(ctx context.Context, ids []int) (map[int]domain.CatalogSegment, error)
}
