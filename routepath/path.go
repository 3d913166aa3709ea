// Package routepath defines Path, the ordered-edge-sequence result type
// shared by every search algorithm in this module.
package routepath

import (
	"errors"

	"github.com/routeweaver/pathcore/graph"
)

// ErrDisjointEdges is returned by Append when the edge to append does not
// start where the path currently ends — a path edge whose source does
// not match the previous destination is a programming error per
// spec.md §7, so this is checked eagerly rather than discovered later.
var ErrDisjointEdges = errors.New("routepath: edge does not continue the path")

// Path is an ordered sequence of edges plus a cached source node. Its
// total cost is the sum of edge costs; its endpoint is the destination
// of the last edge, or the source itself when the path is empty.
type Path struct {
	source int
	edges  []*graph.Edge
}

// New returns an empty Path anchored at source.
func New(source int) *Path {
	return &Path{source: source}
}

// Append extends the path with e. e.From must equal the path's current
// Endpoint, otherwise ErrDisjointEdges is returned and the path is left
// unmodified.
func (p *Path) Append(e *graph.Edge) error {
	if e.From != p.Endpoint() {
		return ErrDisjointEdges
	}
	p.edges = append(p.edges, e)
	return nil
}

// Source returns the node the path starts from.
func (p *Path) Source() int {
	return p.source
}

// Endpoint returns the destination of the last edge, or Source if the
// path carries no edges yet.
func (p *Path) Endpoint() int {
	if len(p.edges) == 0 {
		return p.source
	}
	return p.edges[len(p.edges)-1].To
}

// Cost returns the sum of edge costs along the path.
func (p *Path) Cost() float64 {
	var total float64
	for _, e := range p.edges {
		total += e.Cost
	}
	return total
}

// Edges returns the path's edges in traversal order. The returned slice
// is owned by the caller's copy only by convention — callers must not
// mutate it; Path does not defensively copy on every access.
func (p *Path) Edges() []*graph.Edge {
	return p.edges
}

// Nodes returns the full node sequence visited by the path, including
// Source as the first element.
func (p *Path) Nodes() []int {
	nodes := make([]int, 0, len(p.edges)+1)
	nodes = append(nodes, p.source)
	for _, e := range p.edges {
		nodes = append(nodes, e.To)
	}
	return nodes
}

// Len reports the number of edges in the path.
func (p *Path) Len() int {
	return len(p.edges)
}

// Reconstruct builds a Path from source to dest by walking parent back
// from dest using the parent-edge map produced by the search skeleton.
// It returns (nil, false) if dest is not present in parent and dest !=
// source (i.e. dest was never settled).
func Reconstruct(source, dest int, parent map[int]*graph.Edge) (*Path, bool) {
	if dest == source {
		return New(source), true
	}
	var chain []*graph.Edge
	cur := dest
	for {
		e, ok := parent[cur]
		if !ok {
			return nil, false
		}
		chain = append(chain, e)
		if e.From == source {
			break
		}
		cur = e.From
	}
	p := New(source)
	for i := len(chain) - 1; i >= 0; i-- {
		if err := p.Append(chain[i]); err != nil {
			// parent map is internally consistent by construction; a
			// disjoint edge here means a caller corrupted the map.
			panic(err)
		}
	}
	return p, true
}
