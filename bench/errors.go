package bench

import "errors"

var (
	// ErrEmptyGraph is returned when a harness is built over a graph
	// with no vertices.
	ErrEmptyGraph = errors.New("bench: graph has no vertices")

	// ErrInvalidSource is returned when a fixed source is outside the
	// graph's vertex range.
	ErrInvalidSource = errors.New("bench: source vertex out of range")

	// ErrInsufficientSamples is returned by Analyze when fewer than
	// two size/duration points are supplied: a line needs two points.
	ErrInsufficientSamples = errors.New("bench: at least two samples are required to fit a trend")
)
