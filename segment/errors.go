package segment

import "errors"

// ErrInvalidParameter indicates k <= 0 or min_size < 0.
var ErrInvalidParameter = errors.New("segment: invalid parameter")

// ErrUnsupportedDirections indicates an edge tensor whose D is neither 3
// (6-connectivity) nor 13 (26-connectivity).
var ErrUnsupportedDirections = errors.New("segment: unsupported direction count")
