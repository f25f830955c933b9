package handlers

import (
	"route-directions-service/internal/api/dto"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/geo"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	polyline "github.com/twpayne/go-polyline"
)

func toPoint(p geo.Point) dto.PointResponse {
	return dto.PointResponse{Lat: p.Lat(), Lon: p.Lon()}
}

func toSegment(s domain.Segment) dto.SegmentResponse {
	return dto.SegmentResponse{
		Name:     s.Name(),
		From:     toPoint(s.P1()),
		To:       toPoint(s.P2()),
		LengthKm: s.Length(),
		Heading:  s.Heading(),
	}
}

func toCatalogSegment(e domain.CatalogSegment) dto.SegmentResponse {
	res := toSegment(e.Segment)
	id := e.SegmentID
	res.SegmentID = &id
	return res
}

func toSegments(segs []domain.Segment) []dto.SegmentResponse {
	out := make([]dto.SegmentResponse, 0, len(segs))
	for _, s := range segs {
		out = append(out, toSegment(s))
	}
	return out
}

func toRoute(r domain.Route) dto.RouteResponse {
	segs := r.Segments()

	features := make([]dto.FeatureResponse, 0, r.FeatureCount())
	for f := range r.AllFeatures() {
		features = append(features, dto.FeatureResponse{
			Name:         f.Name(),
			Start:        toPoint(f.Start()),
			End:          toPoint(f.End()),
			StartHeading: f.StartHeading(),
			EndHeading:   f.EndHeading(),
			LengthKm:     f.Length(),
			Segments:     toSegments(f.Segments()),
		})
	}

	return dto.RouteResponse{
		Start:        toPoint(r.Start()),
		End:          toPoint(r.End()),
		StartHeading: r.StartHeading(),
		EndHeading:   r.EndHeading(),
		LengthKm:     r.Length(),
		Polyline:     encodePolyline(segs),
		Features:     features,
		Segments:     toSegments(segs),
	}
}

// Encode the route geometry (start point then every segment end) as a Google polyline.
func encodePolyline(segs []domain.Segment) string {
	if len(segs) == 0 {
		return ""
	}
	coords := make([][]float64, 0, len(segs)+1)
	coords = append(coords, segs[0].P1().LatLon())
	for _, s := range segs {
		coords = append(coords, s.P2().LatLon())
	}
	return string(polyline.EncodeCoords(coords))
}

func toOrbPoint(p geo.Point) orb.Point {
	return orb.Point{p.Lon(), p.Lat()}
}

// One LineString per Feature, in route order.
func toGeoJSON(r domain.Route) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for f := range r.AllFeatures() {
		segs := f.Segments()
		line := make(orb.LineString, 0, len(segs)+1)
		line = append(line, toOrbPoint(f.Start()))
		for _, s := range segs {
			line = append(line, toOrbPoint(s.P2()))
		}

		gf := geojson.NewFeature(line)
		gf.Properties["name"] = f.Name()
		gf.Properties["length_km"] = f.Length()
		gf.Properties["start_heading"] = f.StartHeading()
		gf.Properties["end_heading"] = f.EndHeading()
		fc.Append(gf)
	}
	return fc
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}
