package graph

import "errors"

// Sentinel errors returned by the graph package. Callers should branch
// with errors.Is rather than comparing strings.
var (
	// ErrInvalidVertexCount indicates NewBuilder was called with n < 0.
	ErrInvalidVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrInvalidVertex indicates an edge endpoint is outside [0, n).
	ErrInvalidVertex = errors.New("graph: vertex out of range")

	// ErrNegativeWeight indicates an edge weight is negative; the
	// solver requires non-negative weights.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrAlreadyFinalized indicates AddEdge was called on a Builder
	// whose Finalize method has already run.
	ErrAlreadyFinalized = errors.New("graph: builder already finalized")

	// ErrInvalidDegree indicates RandomSparse received a non-positive
	// average out-degree.
	ErrInvalidDegree = errors.New("graph: average degree must be positive")

	// ErrNilRand indicates a stochastic constructor was called without
	// a random source.
	ErrNilRand = errors.New("graph: rng is required")

	// ErrMalformedEdgeList indicates the text edge-list could not be
	// parsed (bad header, wrong column count, non-numeric field).
	ErrMalformedEdgeList = errors.New("graph: malformed edge-list input")
)
