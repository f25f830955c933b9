package ports

import (
	"context"
	"fmt"
	"route-directions-service/internal/domain"
	"strconv"
	"strings"
)

// Port: storage for rendered directions keyed by route and render options.
type DirectionsCache interface {
	// Return the cached text and true on a hit.
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key string, directions string) error
}

// Build a cache key from everything that affects rendered output.
// Equal routes have equal hashes, so sessions and stateless plans share entries.
func DirectionsCacheKey(r domain.Route, formatter string, normalize bool, initialHeading float64) string {
	return fmt.Sprintf(
		"%016x:%s:%t:%s",
		r.Hash(),
		strings.ToLower(strings.TrimSpace(formatter)),
		normalize,
		strconv.FormatFloat(initialHeading, 'g', -1, 64),
	)
}
