package services

import (
	"context"
	"errors"
	"route-directions-service/internal/adapters/catalog"
	"route-directions-service/internal/directions"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/ports"
	"testing"
)

// batchCatalog wraps a MemoryCatalog with a counting GetMany.
type batchCatalog struct {
	*catalog.MemoryCatalog
	getManyCalls int
}

func (b *batchCatalog) GetMany(ctx context.Context, ids []int) (map[int]domain.CatalogSegment, error) {
	b.getManyCalls++
	out := make(map[int]domain.CatalogSegment, len(ids))
	for _, id := range ids {
		e, err := b.GetSegment(ctx, id)
		if err != nil {
			continue
		}
		out[id] = e
	}
	return out, nil
}

func TestPlanDirections(t *testing.T) {
	req := PlanDirectionsRequest{
		Segments:  []SegmentRef{{SegmentID: 1}, {SegmentID: 2}, {SegmentID: 3}},
		Formatter: "driving",
	}

	res, err := PlanDirections(context.Background(), req, catalog.NewExampleCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Route.FeatureCount() != 2 {
		t.Fatalf("features = %d, want 2", res.Route.FeatureCount())
	}
	if res.InitialHeading != res.Route.StartHeading() {
		t.Fatalf("initial heading = %v, want route start heading %v", res.InitialHeading, res.Route.StartHeading())
	}

	want := "Continue onto Hanita and go 0.2 kilometers.\n" +
		"Turn right onto Trumpeldor Avenue and go 0.2 kilometers.\n"
	if res.Directions != want {
		t.Fatalf("directions =\n%s\nwant\n%s", res.Directions, want)
	}
}

func TestPlanDirectionsReversedSegments(t *testing.T) {
	heading := 270.0
	req := PlanDirectionsRequest{
		Segments: []SegmentRef{
			{SegmentID: 4, Reversed: true},
			{SegmentID: 3, Reversed: true},
			{SegmentID: 2, Reversed: true},
		},
		Formatter:      "walking",
		InitialHeading: &heading,
	}

	res, err := PlanDirections(context.Background(), req, catalog.NewExampleCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Continue onto Trumpeldor Avenue and walk for 5 minutes.\n" +
		"Turn left onto Hanita and walk for 1 minutes.\n"
	if res.Directions != want {
		t.Fatalf("directions =\n%s\nwant\n%s", res.Directions, want)
	}
}

func TestPlanDirectionsErrors(t *testing.T) {
	ctx := context.Background()
	c := catalog.NewExampleCatalog()

	tests := []struct {
		name string
		req  PlanDirectionsRequest
		want error
	}{
		{
			name: "misoriented",
			req:  PlanDirectionsRequest{Segments: []SegmentRef{{SegmentID: 1}, {SegmentID: 3}}, Formatter: "driving"},
			want: domain.ErrNotContiguous,
		},
		{
			name: "unknown segment",
			req:  PlanDirectionsRequest{Segments: []SegmentRef{{SegmentID: 99}}, Formatter: "driving"},
			want: ports.ErrSegmentNotFound,
		},
		{
			name: "unknown formatter",
			req:  PlanDirectionsRequest{Segments: []SegmentRef{{SegmentID: 1}}, Formatter: "flying"},
			want: directions.ErrUnknownFormatter,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PlanDirections(ctx, tc.req, c)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := PlanDirections(ctx, PlanDirectionsRequest{Formatter: "driving"}, c); err == nil {
		t.Fatalf("expected error for empty segment list")
	}
}

func TestResolveSegmentsPrefersBatchLookup(t *testing.T) {
	bc := &batchCatalog{MemoryCatalog: catalog.NewExampleCatalog()}

	segs, err := ResolveSegments(context.Background(), bc, []SegmentRef{{SegmentID: 1}, {SegmentID: 2}, {SegmentID: 1, Reversed: true}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bc.getManyCalls != 1 {
		t.Fatalf("GetMany calls = %d, want 1", bc.getManyCalls)
	}
	if len(segs) != 3 || !segs[2].Equal(segs[0].Reverse()) {
		t.Fatalf("segments = %v", segs)
	}

	if _, err := ResolveSegments(context.Background(), bc, []SegmentRef{{SegmentID: 77}}); !errors.Is(err, ports.ErrSegmentNotFound) {
		t.Fatalf("err = %v, want ErrSegmentNotFound", err)
	}
}

func TestBuildRouteMatchesAppendHistory(t *testing.T) {
	ex := catalog.ExampleSegments()
	segs := []domain.Segment{ex[0].Segment, ex[1].Segment, ex[2].Segment, ex[6].Segment}

	r, err := BuildRoute(segs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := r.Segments()
	if len(got) != len(segs) {
		t.Fatalf("segments = %d, want %d", len(got), len(segs))
	}
	for i := range segs {
		if !got[i].Equal(segs[i]) {
			t.Fatalf("segment %d = %v, want %v", i, got[i], segs[i])
		}
	}
	if r.FeatureCount() != 3 {
		t.Fatalf("features = %d, want 3", r.FeatureCount())
	}
}
