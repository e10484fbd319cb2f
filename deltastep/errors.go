package deltastep

import "errors"

var (
	// ErrInvalidSource is returned when the requested source vertex is
	// outside the graph's vertex range.
	ErrInvalidSource = errors.New("deltastep: source vertex out of range")

	// ErrInvalidDelta is returned when Δ is not strictly positive.
	ErrInvalidDelta = errors.New("deltastep: delta must be positive")

	// ErrFrontierOverflow is returned by DeltaStep when a promotion
	// would push more vertices into a shared frontier buffer than its
	// fixed capacity (the graph's edge count, at least 1) holds. The
	// check runs in every build, once per promotion copy, not inside
	// the relax loop.
	ErrFrontierOverflow = errors.New("deltastep: frontier buffer overflow")
)
