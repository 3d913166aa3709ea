// Package road builds a graph.Graph whose nodes carry geographic
// coordinates and whose edges are derived from road polylines rather
// than inserted directly.
//
// RoadGraph embeds no graph.Graph method set (a distinct type wrapping a
// private *graph.Graph), so there is no direct AddNode/AddEdge to call by
// mistake and therefore no runtime rejection to implement — construction
// invariants stay local to AddRoadNode/AddRoad. See DESIGN.md for the
// tradeoff against spec.md's UnsupportedOperation error kind.
package road
