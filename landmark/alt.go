package landmark

import (
	"github.com/routeweaver/pathcore/graph"
	"github.com/routeweaver/pathcore/search"
)

// table maps node id -> precomputed shortest-path cost from (or to) a
// single landmark. A missing entry means unreachable.
type table map[int]float64

// ALT is the landmark-based lower-bound metric consumed by search.AStar.
// It satisfies search.Metric.
type ALT struct {
	landmarks []int
	forward   []table // forward[i][v] = cost(landmarks[i] -> v)
	reverse   []table // reverse[i][v] = cost(v -> landmarks[i])
}

// Build constructs an ALT metric from k landmarks chosen by provider, by
// running a one-to-all Dijkstra from each landmark on g and on g's
// reverse. Both directions are kept because one-way roads make the two
// asymmetric.
func Build(g *graph.Graph, provider Provider, k int) (*ALT, error) {
	landmarks, err := provider.Landmarks(g, k)
	if err != nil {
		return nil, err
	}

	rev := g.Reversed()

	alt := &ALT{
		landmarks: landmarks,
		forward:   make([]table, len(landmarks)),
		reverse:   make([]table, len(landmarks)),
	}

	for i, l := range landmarks {
		fwd := search.Run(g, []search.Source{{Node: l}}, search.Options{})
		alt.forward[i] = table(fwd.CostMap())

		// reverse[i][v] = cost(v -> l) = cost on the reversed graph from
		// l to v, since reversing swaps every edge's direction.
		back := search.Run(rev, []search.Source{{Node: l}}, search.Options{})
		alt.reverse[i] = table(back.CostMap())
	}

	return alt, nil
}

// LowerBound implements search.Metric. For each landmark L, two valid
// one-directional bounds follow from the triangle inequality:
//
//	d(v,t) >= d(v,L) - d(t,L)   (since d(v,L) <= d(v,t) + d(t,L))
//	d(v,t) >= d(L,t) - d(L,v)   (since d(L,t) <= d(L,v) + d(v,t))
//
// h(v,t) takes the max of both forms across every landmark, clipped at
// zero — a negative term is simply not a useful bound, not evidence the
// true cost is smaller. d(x,L) comes from the reverse table
// (cost(x -> L)); d(L,x) comes from the forward table (cost(L -> x)). A
// missing distance contributes 0 rather than being treated as infinite,
// so the bound never overestimates.
func (a *ALT) LowerBound(v, t int) float64 {
	var best float64
	for i := range a.landmarks {
		if dvL, ok := a.reverse[i][v]; ok {
			if dtL, ok := a.reverse[i][t]; ok {
				if diff := dvL - dtL; diff > best {
					best = diff
				}
			}
		}
		if dLv, ok := a.forward[i][v]; ok {
			if dLt, ok := a.forward[i][t]; ok {
				if diff := dLt - dLv; diff > best {
					best = diff
				}
			}
		}
	}
	return best
}
