package domain

// A Segment offered for selection by a segment catalog.
type CatalogSegment struct {
	SegmentID int
	Segment   Segment
}
