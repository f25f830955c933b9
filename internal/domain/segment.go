package domain

import (
	"fmt"
	"route-directions-service/internal/geo"

	"github.com/cespare/xxhash/v2"
)

// Represents a named straight-line piece of travel from P1 to P2, such as
// one block of a street. Segments are immutable values.
//
// Length (km) and Heading (compass degrees) are derived from the endpoints
// at construction time.
type Segment struct {
	name    string
	p1      geo.Point
	p2      geo.Point
	length  float64
	heading float64
}

// Create a Segment. The name must be non-empty.
func NewSegment(name string, p1, p2 geo.Point) (Segment, error) {
	if name == "" {
		return Segment{}, fmt.Errorf("new segment %v -> %v: %w", p1, p2, ErrEmptyName)
	}

	return Segment{
		name:    name,
		p1:      p1,
		p2:      p2,
		length:  geo.Distance(p1, p2),
		heading: geo.Bearing(p1, p2),
	}, nil
}

// MustSegment is like NewSegment but panics on error. Intended for fixed data.
func MustSegment(name string, p1, p2 geo.Point) Segment {
	s, err := NewSegment(name, p1, p2)
	if err != nil {
		panic(err)
	}
	return s
}

// Return a new Segment with the same name and the endpoints swapped.
func (s Segment) Reverse() Segment {
	return MustSegment(s.name, s.p2, s.p1)
}

func (s Segment) Name() string     { return s.name }
func (s Segment) P1() geo.Point    { return s.p1 }
func (s Segment) P2() geo.Point    { return s.p2 }
func (s Segment) Length() float64  { return s.length }
func (s Segment) Heading() float64 { return s.heading }
func (s Segment) valid() bool      { return s.name != "" }

// Equal reports whether both segments share a name and the same endpoints in the same order.
func (s Segment) Equal(o Segment) bool {
	return s.name == o.name && s.p1 == o.p1 && s.p2 == o.p2
}

func (s Segment) Hash() uint64 {
	d := xxhash.New()
	s.writeHash(d)
	return d.Sum64()
}

func (s Segment) writeHash(d *xxhash.Digest) {
	_, _ = d.WriteString(s.name)
	_, _ = d.Write([]byte{0})
	writePoint(d, s.p1)
	writePoint(d, s.p2)
}

func (s Segment) String() string {
	return fmt.Sprintf("%q %v -> %v", s.name, s.p1, s.p2)
}
