package domain

import (
	"fmt"
	"iter"
	"route-directions-service/internal/geo"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Represents travel along a single named geographic feature, such as a
// road through several intersections or the course of a river.
//
// A Feature is a non-empty, contiguous sequence of Segments that all share
// the Feature's name. Its length is the distance traveled along the path,
// which is not necessarily the straight-line distance between Start and End.
// Features are immutable; Append returns a new Feature and leaves the receiver intact.
type Feature struct {
	name         string
	start        geo.Point
	end          geo.Point
	startHeading float64
	endHeading   float64
	length       float64
	segments     chain[Segment]
}

// Create a single-segment Feature.
func NewFeature(s Segment) (Feature, error) {
	if !s.valid() {
		return Feature{}, fmt.Errorf("new feature: %w", ErrZeroSegment)
	}
	return newFeature(s), nil
}

func newFeature(s Segment) Feature {
	return Feature{
		name:         s.name,
		start:        s.p1,
		end:          s.p2,
		startHeading: s.heading,
		endHeading:   s.heading,
		length:       s.length,
		segments:     chain[Segment]{}.push(s),
	}
}

// Return a new Feature equal to f with s appended.
// s must carry the Feature's name and start where the Feature ends.
func (f Feature) Append(s Segment) (Feature, error) {
	if !s.valid() {
		return Feature{}, fmt.Errorf("append to feature %q: %w", f.name, ErrZeroSegment)
	}
	if s.name != f.name {
		return Feature{}, fmt.Errorf("append to feature %q: segment %q: %w", f.name, s.name, ErrNameMismatch)
	}
	if s.p1 != f.end {
		return Feature{}, fmt.Errorf("append to feature %q: segment starts at %v, feature ends at %v: %w",
			f.name, s.p1, f.end, ErrNotContiguous)
	}
	return f.appendUnchecked(s), nil
}

// MustAppend is like Append but panics when the segment cannot be appended.
func (f Feature) MustAppend(s Segment) Feature {
	next, err := f.Append(s)
	if err != nil {
		panic(err)
	}
	return next
}

func (f Feature) appendUnchecked(s Segment) Feature {
	return Feature{
		name:         f.name,
		start:        f.start,
		end:          s.p2,
		startHeading: f.startHeading,
		endHeading:   s.heading,
		length:       f.length + s.length,
		segments:     f.segments.push(s),
	}
}

func (f Feature) Name() string          { return f.name }
func (f Feature) Start() geo.Point      { return f.start }
func (f Feature) End() geo.Point        { return f.end }
func (f Feature) StartHeading() float64 { return f.startHeading }
func (f Feature) EndHeading() float64   { return f.endHeading }
func (f Feature) Length() float64       { return f.length }
func (f Feature) Len() int              { return f.segments.len() }

// Return the constituent Segments in travel order. The slice is a copy.
func (f Feature) Segments() []Segment { return f.segments.slice() }

// Iterate the constituent Segments in travel order.
func (f Feature) All() iter.Seq[Segment] { return f.segments.all() }

// Equal reports whether both Features consist of equal Segments in the same order.
func (f Feature) Equal(o Feature) bool {
	return equalChains(f.segments, o.segments, Segment.Equal)
}

func (f Feature) Hash() uint64 {
	d := xxhash.New()
	f.writeHash(d)
	return d.Sum64()
}

func (f Feature) writeHash(d *xxhash.Digest) {
	writeUint64(d, uint64(f.segments.len()))
	for _, s := range f.segments.slice() {
		s.writeHash(d)
	}
}

func (f Feature) String() string {
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(f.name)
	b.WriteString(":")
	for _, s := range f.segments.slice() {
		b.WriteString(" ")
		b.WriteString(s.String())
	}
	b.WriteString("}")
	return b.String()
}
