package search

import "github.com/routeweaver/pathcore/graph"

// Source is a search seed: a node with an initial tentative cost, used
// to support multi-source queries (e.g. greedy-farthest landmark
// selection, which searches from every landmark chosen so far).
type Source struct {
	Node int
	Cost float64
}

// Estimator returns a lower bound on the remaining cost from nodeID to
// the (implicit) destination. Returning 0 for every node degenerates the
// search to plain Dijkstra.
type Estimator func(nodeID int) float64

// EdgeFilter decides whether an edge may be relaxed, given the region of
// the eventual destination. Arc-flag search uses this to restrict
// exploration to flagged edges; Dijkstra and A* always return true.
type EdgeFilter func(e *graph.Edge, destRegion int) bool

// Options configures one call to Run.
type Options struct {
	// Estimate is consulted for every node popped from the queue. Nil is
	// treated as the zero estimator (plain Dijkstra).
	Estimate Estimator

	// Filter is consulted for every outgoing edge considered during
	// relaxation. Nil is treated as "always true".
	Filter EdgeFilter

	// DestRegion is passed through to Filter; meaningless when Filter is
	// nil.
	DestRegion int

	// StopAtNode, when true, halts the search as soon as node Stop is
	// settled rather than exploring until exhaustion. Stop is ignored
	// when StopAtNode is false; any node id, including 0, is a valid Stop.
	StopAtNode bool
	Stop       int
}

// Result is the output of one completed exploration.
type Result struct {
	sources []Source
	cost    map[int]float64
	parent  map[int]*graph.Edge
	settled map[int]bool
}

// Cost returns the settled cost to node, if node was reached.
func (r *Result) Cost(node int) (float64, bool) {
	c, ok := r.cost[node]
	return c, ok
}

// CostMap returns the full reachable-node cost map. The returned map is
// owned by the Result and must not be mutated by callers.
func (r *Result) CostMap() map[int]float64 {
	return r.cost
}

// SearchSpace returns the set of settled nodes, useful for diagnostics.
func (r *Result) SearchSpace() map[int]bool {
	return r.settled
}

// Parent exposes the parent-edge map for path reconstruction by
// routepath.Reconstruct.
func (r *Result) Parent() map[int]*graph.Edge {
	return r.parent
}
