package ports

import (
	"context"
	"errors"
	"route-directions-service/internal/domain"
)

var ErrSegmentNotFound = errors.New("segment not found")

// Port: a source of candidate segments a caller can choose from when building a route.
type SegmentCatalog interface {
	// Return every segment in the catalog ordered by SegmentID.
	ListSegments(ctx context.Context) ([]domain.CatalogSegment, error)
	// Return one segment, or an error wrapping ErrSegmentNotFound.
	GetSegment(ctx context.Context, id int) (domain.CatalogSegment, error)
}
