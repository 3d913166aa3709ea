package graph

import "sync"

// Node is identified by an integer id unique within its owning Graph.
// Equality and hashing are by ID; a Node's lifetime equals the Graph's.
type Node struct {
	ID int
}

// Edge is a directed, weighted connection between two nodes. Cost is a
// non-negative real number in seconds. Edges are owned by the Graph they
// were added to; ID is a dense, graph-local identifier assigned at
// insertion time and stays stable for the life of the edge (it survives
// Reduce for every edge that is kept), so side-tables keyed by edge
// identity (arc-flag bit vectors) remain valid across a reduction pass.
type Edge struct {
	ID   uint64
	From int
	To   int
	Cost float64
}

// Option configures a Graph at construction time. Options are applied
// left-to-right, the same functional-options convention ingest.Option
// follows.
type Option func(*Graph)

// WithCapacityHint pre-sizes the internal maps for n nodes, avoiding
// rehashing when the final node count is known in advance (e.g. the
// number of OSM nodes about to be ingested).
func WithCapacityHint(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make(map[int]Node, n)
			g.outgoing = make(map[int][]*Edge, n)
			g.incoming = make(map[int][]*Edge, n)
		}
	}
}

// Graph is a mapping from node id to Node plus, for each node, the list
// of outgoing and incoming edges. The two adjacency lists are kept
// mutually consistent by every mutating method.
//
// Node iteration order is not guaranteed stable across mutations but is
// stable within one iteration (Nodes snapshots under a single lock
// acquisition).
//
// Graph's mutex only protects against concurrent mutation; the
// single-writer/multiple-reader discipline required during the query
// phase (mutation must not overlap with queries) is still the caller's
// responsibility.
type Graph struct {
	mu sync.RWMutex

	nodes      map[int]Node
	outgoing   map[int][]*Edge
	incoming   map[int][]*Edge
	edgeCount  int
	nextEdgeID uint64
}

// New constructs an empty Graph, applying opts left-to-right.
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes:    make(map[int]Node),
		outgoing: make(map[int][]*Edge),
		incoming: make(map[int][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
