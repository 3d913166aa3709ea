package arcflag

import (
	"math"

	"github.com/routeweaver/pathcore/partition"
	"github.com/routeweaver/pathcore/road"
	"github.com/routeweaver/pathcore/search"
)

// wordBits is the width of one flags element; region i's bit lives in
// flags[i/wordBits] at bit (i%wordBits).
const wordBits = 64

// costEpsilon absorbs floating-point rounding when comparing a
// shortest-path-tree edge's cost equality.
const costEpsilon = 1e-9

// Flags is the per-edge region-reachability bit vector set, keyed by
// graph.Edge.ID. Bits are monotone: Preprocess only ever sets bits, never
// clears them.
type Flags struct {
	regionCount int
	bits        map[uint64][]uint64
}

func newFlags(regionCount int) *Flags {
	return &Flags{regionCount: regionCount, bits: make(map[uint64][]uint64)}
}

func (f *Flags) set(edgeID uint64, region int) {
	words := f.bits[edgeID]
	need := region/wordBits + 1
	if len(words) < need {
		grown := make([]uint64, need)
		copy(grown, words)
		words = grown
		f.bits[edgeID] = words
	}
	words[region/wordBits] |= 1 << uint(region%wordBits)
}

// Test reports whether edgeID's bit for region is set.
func (f *Flags) Test(edgeID uint64, region int) bool {
	words := f.bits[edgeID]
	word := region / wordBits
	if word >= len(words) {
		return false
	}
	return words[word]&(1<<uint(region%wordBits)) != 0
}

// RegionCount reports how many regions these Flags were built for.
func (f *Flags) RegionCount() int {
	return f.regionCount
}

// Preprocess computes Flags for rg's regions as produced by p.
//
// For each region R:
//  1. Boundary nodes are R's nodes reached by at least one incoming edge
//     from outside R.
//  2. From each boundary node b, a Dijkstra on the reverse graph yields,
//     for every node n, cost(n, b) — the shortest-path cost from n to b
//     in the original graph. Any forward edge (u, v) satisfying
//     cost(u, b) == cost(v, b) + w(u, v) lies on some shortest-path tree
//     rooted at b, so its R-bit is set.
//  3. Every edge with both endpoints in R additionally gets its R-bit
//     set unconditionally (intra-region shortcuts).
func Preprocess(rg *road.RoadGraph, p partition.Partitioning) *Flags {
	g := rg.Underlying()
	regions := p.Regions(rg)
	flags := newFlags(len(regions))

	rev := g.Reversed()
	allNodes := g.Nodes()

	for ri, nodes := range regions {
		inRegion := make(map[int]bool, len(nodes))
		for _, id := range nodes {
			inRegion[id] = true
		}

		var boundary []int
		for _, id := range nodes {
			for _, e := range g.Incoming(id) {
				if !inRegion[e.From] {
					boundary = append(boundary, id)
					break
				}
			}
		}

		for _, b := range boundary {
			res := search.Run(rev, []search.Source{{Node: b}}, search.Options{})
			costToB := res.CostMap()

			for _, n := range allNodes {
				for _, e := range g.Outgoing(n.ID) {
					cu, okU := costToB[e.From]
					cv, okV := costToB[e.To]
					if !okU || !okV {
						continue
					}
					if math.Abs(cu-(cv+e.Cost)) < costEpsilon {
						flags.set(e.ID, ri)
					}
				}
			}
		}

		for _, id := range nodes {
			for _, e := range g.Outgoing(id) {
				if inRegion[e.To] {
					flags.set(e.ID, ri)
				}
			}
		}
	}

	return flags
}
