package road

import (
	"errors"

	"github.com/routeweaver/pathcore/geo"
	"github.com/routeweaver/pathcore/graph"
)

// ErrUnsupportedOperation is the sentinel named by spec.md §7 for direct
// edge/node insertion attempted on a RoadGraph. RoadGraph's type does not
// expose AddNode/AddEdge at all (see doc.go), so this error cannot
// actually be triggered through the Go API; it is kept as a named
// sentinel so other languages' ports of this spec, and any future
// reflection-based tooling, have a concrete value to check for.
var ErrUnsupportedOperation = errors.New("road: use AddRoadNode/AddRoad on a RoadGraph")

// Node is a graph node augmented with an immutable geographic position.
type Node struct {
	ID  int
	Lat float32
	Lon float32
}

// Road is an ordered polyline of at least two road-node ids, its
// classification, and whether it is one-way in the given order.
type Road struct {
	ID       string
	NodeIDs  []int
	Type     Type
	OneWay   bool
}

// RoadGraph is a graph.Graph whose nodes are all road Nodes. Callers
// insert Nodes and Roads; edges are derived, never inserted directly.
type RoadGraph struct {
	g     *graph.Graph
	nodes map[int]Node
}

// New constructs an empty RoadGraph.
func New() *RoadGraph {
	return &RoadGraph{
		g:     graph.New(),
		nodes: make(map[int]Node),
	}
}

// Underlying exposes the generic graph.Graph backing this RoadGraph for
// read-only use by the search/scc/landmark/partition/arcflag packages,
// none of which need to know about geography.
func (rg *RoadGraph) Underlying() *graph.Graph {
	return rg.g
}

// RoadNode returns the geographic Node for id, if present.
func (rg *RoadGraph) RoadNode(id int) (Node, bool) {
	n, ok := rg.nodes[id]
	return n, ok
}

// AddRoadNode inserts a road node at (lat, lon). It reports whether the
// id was new, matching graph.Graph.AddNode's contract.
func (rg *RoadGraph) AddRoadNode(id int, lat, lon float32) bool {
	if _, ok := rg.nodes[id]; ok {
		return false
	}
	rg.nodes[id] = Node{ID: id, Lat: lat, Lon: lon}
	rg.g.AddNode(id)
	return true
}

// AddRoad expands r's polyline into edges: forward between every
// consecutive pair, and — when r.OneWay is false — also in reverse. Edge
// cost is the geodesic distance (geo.Distance) divided by r.Type's
// reference speed, converted from km/h to m/s. Pairs of nodes at
// identical coordinates are silently skipped (zero-length segments carry
// no information and would otherwise produce a zero-cost edge).
//
// Every node referenced by r must already have been added with
// AddRoadNode; otherwise AddRoad fails with graph.ErrUnknownNode.
func (rg *RoadGraph) AddRoad(r Road) error {
	if len(r.NodeIDs) < 2 {
		return ErrTooFewNodes
	}

	kph, err := SpeedKPH(r.Type)
	if err != nil {
		return err
	}
	metersPerSecond := kph / 3.6

	for i := 0; i < len(r.NodeIDs)-1; i++ {
		a, b := r.NodeIDs[i], r.NodeIDs[i+1]
		na, ok := rg.nodes[a]
		if !ok {
			return graph.ErrUnknownNode
		}
		nb, ok := rg.nodes[b]
		if !ok {
			return graph.ErrUnknownNode
		}

		if na.Lat == nb.Lat && na.Lon == nb.Lon {
			continue
		}

		dist := geo.Distance(na.Lat, na.Lon, nb.Lat, nb.Lon)
		cost := float64(dist) / metersPerSecond

		if _, err := rg.g.AddEdge(a, b, cost); err != nil {
			return err
		}
		if !r.OneWay {
			if _, err := rg.g.AddEdge(b, a, cost); err != nil {
				return err
			}
		}
	}
	return nil
}

// ErrTooFewNodes is returned by AddRoad for a polyline with fewer than
// two node ids; ingest.Builder logs a warning and drops such roads
// rather than propagating this (spec.md §6).
var ErrTooFewNodes = errors.New("road: road must reference at least 2 nodes")
