package search

import (
	"container/heap"
	"math"

	"github.com/routeweaver/pathcore/graph"
)

// Run executes the generic best-first exploration over g, starting from
// every node in sources, and returns the settled costs, parent-edge map,
// and search space. It is the single routine that Dijkstra, A*, and the
// arc-flag query all delegate to.
//
// On extraction of a node u, if u's popped priority is stale (exceeds
// its current best-known cost plus estimator — i.e. a cheaper route to
// u was already found and processed), the entry is discarded. Otherwise
// u is settled and its outgoing edges passing opts.Filter are relaxed: a
// candidate cost replaces cost[v] only if strictly smaller.
func Run(g *graph.Graph, sources []Source, opts Options) *Result {
	estimate := opts.Estimate
	if estimate == nil {
		estimate = func(int) float64 { return 0 }
	}
	filter := opts.Filter
	if filter == nil {
		filter = func(*graph.Edge, int) bool { return true }
	}

	cost := make(map[int]float64)
	parent := make(map[int]*graph.Edge)
	settled := make(map[int]bool)

	pq := make(priorityQueue, 0, len(sources))
	heap.Init(&pq)

	seq := 0
	push := func(node int, c float64) {
		heap.Push(&pq, &item{node: node, priority: c + estimate(node), seq: seq})
		seq++
	}

	for _, s := range sources {
		if existing, ok := cost[s.Node]; !ok || s.Cost < existing {
			cost[s.Node] = s.Cost
			push(s.Node, s.Cost)
		}
	}

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(*item)
		u := top.node

		if settled[u] {
			continue
		}
		// Lazy invalidation: the priority encodes cost+estimate(u), and
		// estimate(u) is fixed for a given node, so comparing against
		// cost[u]+estimate(u) detects stale entries left by an earlier,
		// now-superseded push for the same node.
		if top.priority > cost[u]+estimate(u)+1e-9 {
			continue
		}

		settled[u] = true

		if opts.StopAtNode && u == opts.Stop {
			break
		}

		for _, e := range g.Outgoing(u) {
			if !filter(e, opts.DestRegion) {
				continue
			}
			candidate := cost[u] + e.Cost
			existing, ok := cost[e.To]
			if ok && candidate >= existing {
				continue
			}
			cost[e.To] = candidate
			parent[e.To] = e
			push(e.To, candidate)
		}
	}

	return &Result{
		sources: sources,
		cost:    cost,
		parent:  parent,
		settled: settled,
	}
}

// infinity is a package-internal sentinel "unreachable" value distinct
// from a zero-value float64. Run does not use it: an unreachable node is
// simply absent from Result's cost map.
const infinity = math.MaxFloat64
