package catalog

import (
	"fmt"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/geo"
)

const selectSegmentColumns = `
	SELECT
		segment_id,
		name,
		lat1,
		lon1,
		lat2,
		lon2
	FROM segments`

type scanner interface {
	Scan(dest ...any) error
}

// scanSegment reads one segments row and rebuilds the domain Segment.
func scanSegment(row scanner) (domain.CatalogSegment, error) {
	var (
		id                     int
		name                   string
		lat1, lon1, lat2, lon2 int
	)
	if err := row.Scan(&id, &name, &lat1, &lon1, &lat2, &lon2); err != nil {
		return domain.CatalogSegment{}, err
	}

	p1, err := geo.NewPoint(lat1, lon1)
	if err != nil {
		return domain.CatalogSegment{}, fmt.Errorf("segment_id=%d p1: %w", id, err)
	}
	p2, err := geo.NewPoint(lat2, lon2)
	if err != nil {
		return domain.CatalogSegment{}, fmt.Errorf("segment_id=%d p2: %w", id, err)
	}
	seg, err := domain.NewSegment(name, p1, p2)
	if err != nil {
		return domain.CatalogSegment{}, fmt.Errorf("segment_id=%d: %w", id, err)
	}

	return domain.CatalogSegment{SegmentID: id, Segment: seg}, nil
}
