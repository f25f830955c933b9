package catalog

import (
	"route-directions-service/internal/domain"
	"route-directions-service/internal/geo"
)

// Intersections around a small campus street grid, in millionths of a degree.
//
//	            h
//	            |  Dov Yosef
//	c ----------d---------- e
//	|  Trumpeldor Avenue    |
//	b                       f  Einstein
//	|  Hanita                \
//	a                         g
var (
	exA = geo.MustPoint(32777000, 35021000)
	exB = geo.MustPoint(32778000, 35021000)
	exC = geo.MustPoint(32779000, 35021000)
	exD = geo.MustPoint(32779000, 35023000)
	exE = geo.MustPoint(32779000, 35025000)
	exF = geo.MustPoint(32778000, 35025000)
	exG = geo.MustPoint(32777500, 35026500)
	exH = geo.MustPoint(32780500, 35023000)
)

// ExampleSegments returns the fixed list of segments offered for selection
// when no database is configured.
func ExampleSegments() []domain.CatalogSegment {
	return []domain.CatalogSegment{
		{SegmentID: 1, Segment: domain.MustSegment("Hanita", exA, exB)},
		{SegmentID: 2, Segment: domain.MustSegment("Hanita", exB, exC)},
		{SegmentID: 3, Segment: domain.MustSegment("Trumpeldor Avenue", exC, exD)},
		{SegmentID: 4, Segment: domain.MustSegment("Trumpeldor Avenue", exD, exE)},
		{SegmentID: 5, Segment: domain.MustSegment("Einstein", exE, exF)},
		{SegmentID: 6, Segment: domain.MustSegment("Einstein", exF, exG)},
		{SegmentID: 7, Segment: domain.MustSegment("Dov Yosef", exD, exH)},
	}
}

// NewExampleCatalog returns a MemoryCatalog over ExampleSegments.
func NewExampleCatalog() *MemoryCatalog {
	c, err := NewMemoryCatalog(ExampleSegments())
	if err != nil {
		panic(err)
	}
	return c
}
