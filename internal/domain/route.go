package domain

import (
	"fmt"
	"iter"
	"route-directions-service/internal/geo"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Represents a path across arbitrary Segments regardless of their names.
//
// A Route can be viewed either as its flat Segment sequence or as a
// sequence of Features, where each Feature is a maximal run of consecutive
// same-named Segments. No two adjacent Features share a name.
//
// Routes are immutable and append-only. Append copies nothing: the new
// Route shares its prefix with the receiver, so several routes may branch
// from one prefix and be read concurrently without locking.
type Route struct {
	start        geo.Point
	end          geo.Point
	startHeading float64
	endHeading   float64
	length       float64
	segments     chain[Segment]
	features     chain[Feature]
	lastSegment  Segment
}

// Create a single-segment Route. The segment must have positive length.
func NewRoute(s Segment) (Route, error) {
	if !s.valid() {
		return Route{}, fmt.Errorf("new route: %w", ErrZeroSegment)
	}
	if s.length <= 0 {
		return Route{}, fmt.Errorf("new route: segment %v: %w", s, ErrZeroLength)
	}

	return Route{
		start:        s.p1,
		end:          s.p2,
		startHeading: s.heading,
		endHeading:   s.heading,
		length:       s.length,
		segments:     chain[Segment]{}.push(s),
		features:     chain[Feature]{}.push(newFeature(s)),
		lastSegment:  s,
	}, nil
}

// MustRoute is like NewRoute but panics on error.
func MustRoute(s Segment) Route {
	r, err := NewRoute(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Return a new Route equal to r with s appended. s must start where r ends.
//
// If s carries the name of the last Feature it extends that Feature;
// otherwise it starts a new trailing Feature.
func (r Route) Append(s Segment) (Route, error) {
	if r.IsZero() {
		return Route{}, fmt.Errorf("append to route: %w", ErrZeroRoute)
	}
	if !s.valid() {
		return Route{}, fmt.Errorf("append to route: %w", ErrZeroSegment)
	}
	if s.p1 != r.end {
		return Route{}, fmt.Errorf("append to route: segment %q starts at %v, route ends at %v: %w",
			s.name, s.p1, r.end, ErrNotContiguous)
	}

	features := r.features
	if last := features.last(); last.name == s.name {
		features = features.replaceLast(last.appendUnchecked(s))
	} else {
		features = features.push(newFeature(s))
	}

	return Route{
		start:        r.start,
		end:          s.p2,
		startHeading: r.startHeading,
		endHeading:   s.heading,
		length:       r.length + s.length,
		segments:     r.segments.push(s),
		features:     features,
		lastSegment:  s,
	}, nil
}

// MustAppend is like Append but panics when the segment cannot be appended.
func (r Route) MustAppend(s Segment) Route {
	next, err := r.Append(s)
	if err != nil {
		panic(err)
	}
	return next
}

func (r Route) Start() geo.Point               { return r.start }
func (r Route) End() geo.Point                 { return r.end }
func (r Route) StartHeading() float64          { return r.startHeading }
func (r Route) EndHeading() float64            { return r.endHeading }
func (r Route) Length() float64                { return r.length }
func (r Route) LastSegment() Segment           { return r.lastSegment }
func (r Route) IsZero() bool                   { return r.segments.len() == 0 }
func (r Route) SegmentCount() int              { return r.segments.len() }
func (r Route) FeatureCount() int              { return r.features.len() }
func (r Route) Features() []Feature            { return r.features.slice() }
func (r Route) Segments() []Segment            { return r.segments.slice() }
func (r Route) AllFeatures() iter.Seq[Feature] { return r.features.all() }
func (r Route) AllSegments() iter.Seq[Segment] { return r.segments.all() }

// Equal reports whether both Routes decompose into the same Features in the same order.
func (r Route) Equal(o Route) bool {
	return equalChains(r.features, o.features, Feature.Equal)
}

func (r Route) Hash() uint64 {
	d := xxhash.New()
	writeUint64(d, uint64(r.features.len()))
	for _, f := range r.features.slice() {
		f.writeHash(d)
	}
	return d.Sum64()
}

func (r Route) String() string {
	parts := make([]string, 0, r.features.len())
	for _, f := range r.features.slice() {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, " ")
}
