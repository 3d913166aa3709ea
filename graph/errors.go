package graph

import "errors"

// ErrUnknownNode is returned by AddEdge when either endpoint has not
// been added to the graph yet.
var ErrUnknownNode = errors.New("graph: unknown node")

// ErrInvalidCost is returned by AddEdge when cost is negative.
var ErrInvalidCost = errors.New("graph: cost must be non-negative")
