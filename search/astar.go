package search

import (
	"github.com/routeweaver/pathcore/graph"
	"github.com/routeweaver/pathcore/routepath"
)

// Metric supplies an admissible, consistent lower-bound estimate of the
// remaining cost from a node to a fixed destination. landmark.ALT is the
// concrete metric this module provides, but Metric itself has no
// dependency on landmarks so any admissible heuristic can drive A*.
type Metric interface {
	// LowerBound returns a lower bound on the shortest-path cost from
	// node to destination.
	LowerBound(node, destination int) float64
}

// AStar answers Cost/Path/SearchSpace queries with exploration biased by
// a Metric.
type AStar struct {
	g      *graph.Graph
	metric Metric
}

// NewAStar wraps g for A* queries using metric as the heuristic.
func NewAStar(g *graph.Graph, metric Metric) *AStar {
	return &AStar{g: g, metric: metric}
}

func (a *AStar) run(source, destination int) *Result {
	estimate := func(node int) float64 { return a.metric.LowerBound(node, destination) }
	return Run(a.g, []Source{{Node: source}}, Options{
		Estimate:   estimate,
		StopAtNode: true,
		Stop:       destination,
	})
}

// Cost returns the shortest-path cost from source to destination, or
// false if unreachable. It equals Dijkstra.Cost on the same (s, t) when
// the metric is admissible and consistent.
func (a *AStar) Cost(source, destination int) (float64, bool) {
	return a.run(source, destination).Cost(destination)
}

// Path returns the shortest path from source to destination, or false if
// none exists.
func (a *AStar) Path(source, destination int) (*routepath.Path, bool) {
	res := a.run(source, destination)
	if _, ok := res.Cost(destination); !ok {
		return nil, false
	}
	return routepath.Reconstruct(source, destination, res.Parent())
}

// SearchSpace returns the set of nodes settled while searching from
// source to destination.
func (a *AStar) SearchSpace(source, destination int) map[int]bool {
	return a.run(source, destination).SearchSpace()
}
