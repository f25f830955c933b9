package domain

import "errors"

// Contract violations reported by constructors and appends.
// They signal caller bugs; nothing in this package retries or repairs them.
var (
	ErrEmptyName     = errors.New("segment name must be non-empty")
	ErrZeroSegment   = errors.New("segment was not built with NewSegment")
	ErrNameMismatch  = errors.New("segment name does not match feature name")
	ErrNotContiguous = errors.New("segment does not start where the path ends")
	ErrZeroLength    = errors.New("route must have positive length")
	ErrZeroRoute     = errors.New("route was not built with NewRoute")
)
