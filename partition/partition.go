package partition

import "github.com/routeweaver/pathcore/road"

// Partitioning produces an ordered list of disjoint node-id sets whose
// union is every road node in rg. Region index is the list position;
// arc-flag preprocessing keys its per-edge bit vector on that index, so
// implementations must return the same region count (and, for a fixed
// input, the same node assignment) on every call.
type Partitioning interface {
	Regions(rg *road.RoadGraph) [][]int
}

// Rectangle partitions by an axis-aligned geographic bounding box: nodes
// strictly inside, inclusive of the bounds, form region 0; every other
// node forms region 1. Region 1 is still returned even if empty, so flag
// indices stay stable (spec.md §4.7).
type Rectangle struct {
	MinLat, MaxLat float32
	MinLon, MaxLon float32
}

// Regions implements Partitioning for Rectangle.
func (r Rectangle) Regions(rg *road.RoadGraph) [][]int {
	var inside, outside []int
	for _, n := range rg.Underlying().Nodes() {
		rn, ok := rg.RoadNode(n.ID)
		if !ok {
			continue
		}
		if rn.Lat >= r.MinLat && rn.Lat <= r.MaxLat && rn.Lon >= r.MinLon && rn.Lon <= r.MaxLon {
			inside = append(inside, n.ID)
		} else {
			outside = append(outside, n.ID)
		}
	}
	return [][]int{inside, outside}
}
