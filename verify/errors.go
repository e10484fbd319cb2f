package verify

import "errors"

// ErrInvalidSource is returned when the requested source vertex is
// outside the graph's vertex range.
var ErrInvalidSource = errors.New("verify: source vertex out of range")
