package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"route-directions-service/internal/directions"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/platform/obs"
	"route-directions-service/internal/ports"
)

// Identifies a catalog segment and the direction to travel it in.
type SegmentRef struct {
	SegmentID int
	Reversed  bool
}

type PlanDirectionsRequest struct {
	Segments  []SegmentRef
	Formatter string
	Normalize bool
	// Heading the traveler faces before the first feature. Defaults to the route's start heading.
	InitialHeading *float64
}

type DirectionsResult struct {
	Route          domain.Route
	Formatter      string
	InitialHeading float64
	Directions     string
	Cached         bool
}

// Renders directions, consulting Cache first when one is configured.
type Renderer struct {
	Cache ports.DirectionsCache
}

// Build a Route by appending segments in order.
func BuildRoute(segments []domain.Segment) (domain.Route, error) {
	if len(segments) == 0 {
		return domain.Route{}, errors.New("build route: at least one segment is required")
	}

	r, err := domain.NewRoute(segments[0])
	if err != nil {
		return domain.Route{}, fmt.Errorf("build route: segment #1: %w", err)
	}
	for i, s := range segments[1:] {
		r, err = r.Append(s)
		if err != nil {
			return domain.Route{}, fmt.Errorf("build route: segment #%d: %w", i+2, err)
		}
	}
	return r, nil
}

// Look up a catalog segment, reversing it when requested.
func ResolveSegment(ctx context.Context, catalog ports.SegmentCatalog, ref SegmentRef) (domain.Segment, error) {
	entry, err := catalog.GetSegment(ctx, ref.SegmentID)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("resolve segment: %w", err)
	}
	if ref.Reversed {
		return entry.Segment.Reverse(), nil
	}
	return entry.Segment, nil
}

// Resolve refs in order. A ref may appear more than once.
func ResolveSegments(ctx context.Context, catalog ports.SegmentCatalog, refs []SegmentRef) (_ []domain.Segment, err error) {
	defer obs.Time(ctx, "services.ResolveSegments")(&err)

	out := make([]domain.Segment, 0, len(refs))

	// Prefer a single batched lookup when the catalog supports it.
	if bc, ok := catalog.(ports.SegmentBatchCatalog); ok {
		ids := make([]int, 0, len(refs))
		for _, ref := range refs {
			ids = append(ids, ref.SegmentID)
		}

		found, err := bc.GetMany(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("resolve segments: get many: %w", err)
		}

		for _, ref := range refs {
			entry, ok := found[ref.SegmentID]
			if !ok {
				return nil, fmt.Errorf("resolve segments: segment_id=%d: %w", ref.SegmentID, ports.ErrSegmentNotFound)
			}
			seg := entry.Segment
			if ref.Reversed {
				seg = seg.Reverse()
			}
			out = append(out, seg)
		}
		return out, nil
	}

	for _, ref := range refs {
		seg, err := ResolveSegment(ctx, catalog, ref)
		if err != nil {
			return nil, fmt.Errorf("resolve segments: %w", err)
		}
		out = append(out, seg)
	}
	return out, nil
}

// PlanDirections builds a Route from catalog segments and renders it.
func (rd Renderer) PlanDirections(
	ctx context.Context,
	req PlanDirectionsRequest,
	catalog ports.SegmentCatalog,
) (*DirectionsResult, error) {
	lf, err := directions.FormatterByName(req.Formatter, req.Normalize)
	if err != nil {
		return nil, fmt.Errorf("plan directions: %w", err)
	}

	segs, err := ResolveSegments(ctx, catalog, req.Segments)
	if err != nil {
		return nil, fmt.Errorf("plan directions: %w", err)
	}

	r, err := BuildRoute(segs)
	if err != nil {
		return nil, fmt.Errorf("plan directions: %w", err)
	}

	return rd.render(ctx, r, req.Formatter, req.Normalize, lf, req.InitialHeading), nil
}

// PlanDirections renders without a cache.
func PlanDirections(ctx context.Context, req PlanDirectionsRequest, catalog ports.SegmentCatalog) (*DirectionsResult, error) {
	return Renderer{}.PlanDirections(ctx, req, catalog)
}

// Cache failures are logged and never fail a render.
func (rd Renderer) render(
	ctx context.Context,
	r domain.Route,
	name string,
	normalize bool,
	lf directions.LineFormatter,
	initialHeading *float64,
) *DirectionsResult {
	heading := r.StartHeading()
	if initialHeading != nil {
		heading = *initialHeading
	}

	res := &DirectionsResult{
		Route:          r,
		Formatter:      name,
		InitialHeading: heading,
	}

	var key string
	if rd.Cache != nil {
		key = ports.DirectionsCacheKey(r, name, normalize, heading)
		text, ok, err := rd.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("req_id=%s directions cache read failed: %v", obs.RequestID(ctx), err)
		} else if ok {
			res.Directions = text
			res.Cached = true
			return res
		}
	}

	res.Directions = directions.ComputeDirections(lf, r, heading)

	if rd.Cache != nil {
		if err := rd.Cache.Put(ctx, key, res.Directions); err != nil {
			log.Printf("req_id=%s directions cache write failed: %v", obs.RequestID(ctx), err)
		}
	}

	return res
}
