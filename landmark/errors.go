package landmark

import "errors"

// ErrInvalidCount is returned by a Provider when the requested landmark
// count k is <= 0.
var ErrInvalidCount = errors.New("landmark: count must be positive")

// ErrTooFew is returned by a Provider when k exceeds the number of nodes
// in the graph.
var ErrTooFew = errors.New("landmark: graph has fewer than k nodes")
