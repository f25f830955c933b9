package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/geo"
	"strings"
)

type PointSeed struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type SegmentSeed struct {
	SegmentID int       `json:"segment_id"`
	Name      string    `json:"name"`
	From      PointSeed `json:"from"`
	To        PointSeed `json:"to"`
}

// Read and validate a JSON array of segment seeds.
func LoadSeedFile(jsonPath string) ([]domain.CatalogSegment, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load segment seeds: read %q: %w", jsonPath, err)
	}

	var data []SegmentSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load segment seeds: parse json: %w", err)
	}

	return ParseSeeds(data)
}

// Convert seeds to catalog entries, rejecting duplicate IDs and invalid segments.
func ParseSeeds(data []SegmentSeed) ([]domain.CatalogSegment, error) {
	seen := make(map[int]struct{}, len(data))
	out := make([]domain.CatalogSegment, 0, len(data))
	for i, item := range data {
		if item.SegmentID <= 0 {
			return nil, fmt.Errorf("parse segment seeds: invalid segment_id at index %d: %d", i+1, item.SegmentID)
		}
		if _, ok := seen[item.SegmentID]; ok {
			return nil, fmt.Errorf("parse segment seeds: duplicate segment_id %d at index %d", item.SegmentID, i+1)
		}
		seen[item.SegmentID] = struct{}{}

		from, err := geo.FromDegrees(item.From.Lat, item.From.Lon)
		if err != nil {
			return nil, fmt.Errorf("parse segment seeds: segment_id=%d from: %w", item.SegmentID, err)
		}
		to, err := geo.FromDegrees(item.To.Lat, item.To.Lon)
		if err != nil {
			return nil, fmt.Errorf("parse segment seeds: segment_id=%d to: %w", item.SegmentID, err)
		}

		seg, err := domain.NewSegment(strings.TrimSpace(item.Name), from, to)
		if err != nil {
			return nil, fmt.Errorf("parse segment seeds: segment_id=%d: %w", item.SegmentID, err)
		}
		out = append(out, domain.CatalogSegment{SegmentID: item.SegmentID, Segment: seg})
	}

	return out, nil
}
