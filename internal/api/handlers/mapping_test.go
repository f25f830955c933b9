package handlers

import (
	"math"
	"route-directions-service/internal/adapters/catalog"
	"route-directions-service/internal/domain"
	"testing"

	"github.com/paulmach/orb"
	polyline "github.com/twpayne/go-polyline"
)

func TestEncodePolylineFollowsRouteGeometry(t *testing.T) {
	entries := catalog.ExampleSegments()
	segs := []domain.Segment{entries[0].Segment, entries[1].Segment, entries[2].Segment}

	enc := encodePolyline(segs)

	coords, rest, err := polyline.DecodeCoords([]byte(enc))
	if err != nil {
		t.Fatalf("decode polyline: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("trailing polyline bytes: %q", rest)
	}

	want := [][]float64{
		segs[0].P1().LatLon(),
		segs[0].P2().LatLon(),
		segs[1].P2().LatLon(),
		segs[2].P2().LatLon(),
	}
	if len(coords) != len(want) {
		t.Fatalf("coords = %d, want %d", len(coords), len(want))
	}
	for i := range want {
		for j := range 2 {
			if math.Abs(coords[i][j]-want[i][j]) > 1e-5 {
				t.Fatalf("coord[%d] = %v, want %v", i, coords[i], want[i])
			}
		}
	}
}

func TestToGeoJSONOneLinePerFeature(t *testing.T) {
	entries := catalog.ExampleSegments()
	r := domain.MustRoute(entries[0].Segment).
		MustAppend(entries[1].Segment).
		MustAppend(entries[2].Segment)

	fc := toGeoJSON(r)
	if len(fc.Features) != 2 {
		t.Fatalf("features = %d, want 2", len(fc.Features))
	}

	first := fc.Features[0]
	if first.Properties["name"] != "Hanita" {
		t.Fatalf("first name = %v, want Hanita", first.Properties["name"])
	}
	line, ok := first.Geometry.(orb.LineString)
	if !ok {
		t.Fatalf("geometry = %T, want orb.LineString", first.Geometry)
	}
	if len(line) != 3 {
		t.Fatalf("first line points = %d, want 3", len(line))
	}
	// GeoJSON positions are [lon, lat].
	if line[0][0] != r.Start().Lon() || line[0][1] != r.Start().Lat() {
		t.Fatalf("first position = %v, want start %v", line[0], r.Start())
	}
}

func TestEncodePolylineEmpty(t *testing.T) {
	if got := encodePolyline(nil); got != "" {
		t.Fatalf("encodePolyline(nil) = %q, want empty", got)
	}
}

func TestSplitLines(t *testing.T) {
	if got := splitLines(""); len(got) != 0 {
		t.Fatalf("splitLines(\"\") = %v, want empty", got)
	}
	got := splitLines("a\nb\n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("splitLines = %q, want [a b]", got)
	}
}
