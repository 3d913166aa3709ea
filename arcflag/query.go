package arcflag

import (
	"github.com/routeweaver/pathcore/graph"
	"github.com/routeweaver/pathcore/road"
	"github.com/routeweaver/pathcore/routepath"
	"github.com/routeweaver/pathcore/search"
)

// Query answers shortest-path queries restricted to edges flagged for
// the destination's region, using a zero heuristic (flags alone carry
// the speedup).
type Query struct {
	g      *graph.Graph
	flags  *Flags
	region map[int]int // node id -> region index
}

// NewQuery builds a Query over rg using flags and the same partitioning
// regions flags was built from (regions is needed again here to map
// destination nodes to their region index; Flags itself stores only
// edge bits).
func NewQuery(rg *road.RoadGraph, flags *Flags, regions [][]int) *Query {
	region := make(map[int]int)
	for ri, nodes := range regions {
		for _, id := range nodes {
			region[id] = ri
		}
	}
	return &Query{g: rg.Underlying(), flags: flags, region: region}
}

func (q *Query) run(source, destination int) (*search.Result, bool) {
	destRegion, ok := q.region[destination]
	if !ok {
		return nil, false
	}
	filter := func(e *graph.Edge, destRegion int) bool {
		return q.flags.Test(e.ID, destRegion)
	}
	res := search.Run(q.g, []search.Source{{Node: source}}, search.Options{
		Filter:     filter,
		DestRegion: destRegion,
		StopAtNode: true,
		Stop:       destination,
	})
	return res, true
}

// Cost returns the shortest-path cost from source to destination using
// only flagged edges, or false if destination's region is unknown or
// destination is unreachable under the filter.
func (q *Query) Cost(source, destination int) (float64, bool) {
	res, ok := q.run(source, destination)
	if !ok {
		return 0, false
	}
	return res.Cost(destination)
}

// Path returns the shortest path from source to destination under the
// arc-flag filter, or false if none exists.
func (q *Query) Path(source, destination int) (*routepath.Path, bool) {
	res, ok := q.run(source, destination)
	if !ok {
		return nil, false
	}
	if _, reached := res.Cost(destination); !reached {
		return nil, false
	}
	return routepath.Reconstruct(source, destination, res.Parent())
}

// SearchSpace returns the set of nodes settled while searching from
// source to destination under the arc-flag filter.
func (q *Query) SearchSpace(source, destination int) map[int]bool {
	res, ok := q.run(source, destination)
	if !ok {
		return nil
	}
	return res.SearchSpace()
}
