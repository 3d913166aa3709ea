package landmark

import (
	"math/rand"
	"sort"

	"github.com/routeweaver/pathcore/graph"
	"github.com/routeweaver/pathcore/search"
)

// Provider picks k distinct landmark nodes from a graph.
type Provider interface {
	Landmarks(g *graph.Graph, k int) ([]int, error)
}

func validateCount(g *graph.Graph, k int) error {
	if k <= 0 {
		return ErrInvalidCount
	}
	if k > g.Size() {
		return ErrTooFew
	}
	return nil
}

// Random samples k distinct nodes uniformly without replacement.
type Random struct {
	// Seed selects the deterministic RNG stream; 0 uses a fixed default
	// seed so Landmarks is reproducible unless a caller opts into
	// variation explicitly.
	Seed int64
}

// defaultSeed is the fixed seed used when Random.Seed is left at zero,
// kept stable so tests and demos get reproducible landmark sets.
const defaultSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// Landmarks implements Provider for Random.
func (r Random) Landmarks(g *graph.Graph, k int) ([]int, error) {
	if err := validateCount(g, k); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	ids := make([]int, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	sort.Ints(ids)

	rng := rngFromSeed(r.Seed)
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return ids[:k], nil
}

// GreedyFarthest picks the first landmark uniformly at random, then
// repeatedly adds whichever remaining node is farthest from the current
// landmark set (per a multi-source Dijkstra), breaking ties by
// first-encountered node order.
type GreedyFarthest struct {
	Seed int64
}

// Landmarks implements Provider for GreedyFarthest.
func (gf GreedyFarthest) Landmarks(g *graph.Graph, k int) ([]int, error) {
	if err := validateCount(g, k); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	ids := make([]int, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	sort.Ints(ids)

	rng := rngFromSeed(gf.Seed)
	first := ids[rng.Intn(len(ids))]

	chosen := []int{first}
	chosenSet := map[int]bool{first: true}

	for len(chosen) < k {
		sources := make([]search.Source, len(chosen))
		for i, c := range chosen {
			sources[i] = search.Source{Node: c}
		}
		res := search.Run(g, sources, search.Options{})

		var farthest int
		var farthestCost float64 = -1
		found := false
		for _, id := range ids {
			if chosenSet[id] {
				continue
			}
			cost, ok := res.Cost(id)
			if !ok {
				continue
			}
			if !found || cost > farthestCost {
				farthest = id
				farthestCost = cost
				found = true
			}
		}
		if !found {
			// every remaining node is unreachable from the current set;
			// fall back to the first-encountered unvisited node so
			// Landmarks still returns exactly k distinct nodes.
			for _, id := range ids {
				if !chosenSet[id] {
					farthest = id
					found = true
					break
				}
			}
		}
		chosen = append(chosen, farthest)
		chosenSet[farthest] = true
	}

	return chosen, nil
}
