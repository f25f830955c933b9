// Package geo provides the point abstraction used by route segments.
//
// Distances and headings use a flat-surface approximation that is only
// accurate over short regional distances (a few tens of kilometers).
package geo

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Kilometers per degree of latitude and longitude near the reference region.
	KmPerDegreeLatitude  = 110.901
	KmPerDegreeLongitude = 93.681

	microDegrees = 1_000_000

	MaxLatitude  = 90 * microDegrees
	MaxLongitude = 180 * microDegrees
)

var ErrOutOfRange = errors.New("coordinate out of range")

// Immutable geographic location stored in millionths of a degree.
// Two Points are equal exactly when their coordinates are equal, so == is safe.
type Point struct {
	lat int
	lon int
}

// Create a Point from latitude and longitude in millionths of a degree.
func NewPoint(latMicro, lonMicro int) (Point, error) {
	if latMicro < -MaxLatitude || latMicro > MaxLatitude {
		return Point{}, fmt.Errorf("new point: latitude %d: %w", latMicro, ErrOutOfRange)
	}
	if lonMicro < -MaxLongitude || lonMicro > MaxLongitude {
		return Point{}, fmt.Errorf("new point: longitude %d: %w", lonMicro, ErrOutOfRange)
	}
	return Point{lat: latMicro, lon: lonMicro}, nil
}

// Create a Point from degrees, rounding to the nearest millionth.
func FromDegrees(lat, lon float64) (Point, error) {
	return NewPoint(int(math.Round(lat*microDegrees)), int(math.Round(lon*microDegrees)))
}

// MustPoint is like NewPoint but panics on invalid input. Intended for fixed data.
func MustPoint(latMicro, lonMicro int) Point {
	p, err := NewPoint(latMicro, lonMicro)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Point) LatMicro() int { return p.lat }
func (p Point) LonMicro() int { return p.lon }

func (p Point) Lat() float64 { return float64(p.lat) / microDegrees }
func (p Point) Lon() float64 { return float64(p.lon) / microDegrees }

// Return coordinates as [lat, lon] for polyline encoding.
func (p Point) LatLon() []float64 { return []float64{p.Lat(), p.Lon()} }

func (p Point) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat(), p.Lon())
}

// Straight-line distance in kilometers between a and b.
func Distance(a, b Point) float64 {
	north, east := offsetKm(a, b)
	return math.Hypot(north, east)
}

// Compass heading in degrees from a to b, in [0, 360).
// North is 0 and east is 90. Returns 0 when a and b coincide.
func Bearing(a, b Point) float64 {
	if a == b {
		return 0
	}

	north, east := offsetKm(a, b)
	deg := math.Atan2(east, north) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	// Atan2 can round a tiny negative angle up to exactly 360.
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

func offsetKm(a, b Point) (north, east float64) {
	north = float64(b.lat-a.lat) / microDegrees * KmPerDegreeLatitude
	east = float64(b.lon-a.lon) / microDegrees * KmPerDegreeLongitude
	return north, east
}
