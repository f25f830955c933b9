package dto

type PointResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type SegmentResponse struct {
	SegmentID *int          `json:"segment_id,omitempty"`
	Name      string        `json:"name"`
	From      PointResponse `json:"from"`
	To        PointResponse `json:"to"`
	LengthKm  float64       `json:"length_km"`
	Heading   float64       `json:"heading"`
}

type ListSegmentsResponse struct {
	Segments []SegmentResponse `json:"segments"`
}

type SegmentRefRequest struct {
	SegmentID int  `json:"segment_id"`
	Reversed  bool `json:"reversed"`
}
