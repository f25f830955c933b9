package dto

import "time"

type FeatureResponse struct {
	Name         string            `json:"name"`
	Start        PointResponse     `json:"start"`
	End          PointResponse     `json:"end"`
	StartHeading float64           `json:"start_heading"`
	EndHeading   float64           `json:"end_heading"`
	LengthKm     float64           `json:"length_km"`
	Segments     []SegmentResponse `json:"segments"`
}

type RouteResponse struct {
	Start        PointResponse     `json:"start"`
	End          PointResponse     `json:"end"`
	StartHeading float64           `json:"start_heading"`
	EndHeading   float64           `json:"end_heading"`
	LengthKm     float64           `json:"length_km"`
	Polyline     string            `json:"polyline"`
	Features     []FeatureResponse `json:"features"`
	Segments     []SegmentResponse `json:"segments"`
}

type DirectionsRequest struct {
	Segments  []SegmentRefRequest `json:"segments"`
	Formatter string              `json:"formatter"`
	Heading   *float64            `json:"heading"`
	Normalize *bool               `json:"normalize"`
}

type DirectionsResponse struct {
	Formatter      string        `json:"formatter"`
	InitialHeading float64       `json:"initial_heading"`
	Directions     string        `json:"directions"`
	Lines          []string      `json:"lines"`
	Cached         bool          `json:"cached"`
	Route          RouteResponse `json:"route"`
}

type SessionResponse struct {
	SessionID string        `json:"session_id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Route     RouteResponse `json:"route"`
}
