package search

import (
	"github.com/routeweaver/pathcore/graph"
	"github.com/routeweaver/pathcore/routepath"
)

// Dijkstra answers Cost/Path/SearchSpace queries with a zero heuristic
// and no edge filter — Run's general loop specialized to plain Dijkstra.
type Dijkstra struct {
	g *graph.Graph
}

// NewDijkstra wraps g for Dijkstra queries.
func NewDijkstra(g *graph.Graph) *Dijkstra {
	return &Dijkstra{g: g}
}

// Cost returns the shortest-path cost from source to destination, or
// false if destination is unreachable.
func (d *Dijkstra) Cost(source, destination int) (float64, bool) {
	res := Run(d.g, []Source{{Node: source}}, Options{StopAtNode: true, Stop: destination})
	return res.Cost(destination)
}

// Path returns the shortest path from source to destination, or false if
// none exists.
func (d *Dijkstra) Path(source, destination int) (*routepath.Path, bool) {
	res := Run(d.g, []Source{{Node: source}}, Options{StopAtNode: true, Stop: destination})
	if _, ok := res.Cost(destination); !ok {
		return nil, false
	}
	return routepath.Reconstruct(source, destination, res.Parent())
}

// SearchSpace returns the set of nodes settled while searching from
// source to destination.
func (d *Dijkstra) SearchSpace(source, destination int) map[int]bool {
	res := Run(d.g, []Source{{Node: source}}, Options{StopAtNode: true, Stop: destination})
	return res.SearchSpace()
}

// OneToAll computes shortest-path costs from source to every reachable
// node, exhausting the queue rather than stopping at a single
// destination.
func (d *Dijkstra) OneToAll(source int) *Result {
	return Run(d.g, []Source{{Node: source}}, Options{})
}

// MultiSource computes shortest-path costs from any of sources
// simultaneously, each settled node attributed to whichever source
// reaches it first.
func (d *Dijkstra) MultiSource(sources []int) *Result {
	ss := make([]Source, len(sources))
	for i, s := range sources {
		ss[i] = Source{Node: s}
	}
	return Run(d.g, ss, Options{})
}
