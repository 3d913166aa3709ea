// Package pathcore is the core shortest-path engine of a road-network
// routing library: a graph model, a road overlay that derives edge
// costs from OSM-style road classifications, and three interchangeable
// point-to-point query algorithms — plain Dijkstra, A* with a
// landmark-based admissible heuristic (ALT), and arc-flag-accelerated
// Dijkstra — built on one shared best-first exploration routine.
//
// Subpackages, roughly leaves-first:
//
//	graph/     — directed weighted graph: nodes, edges, adjacency, reduce
//	geo/       — equirectangular distance approximation
//	road/      — road nodes, road-type speed table, polyline-to-edge expansion
//	routepath/ — the Path type shared by every query algorithm
//	scc/       — strongly-connected-component reduction
//	search/    — the generic best-first skeleton, Dijkstra, A*
//	landmark/  — landmark selection (random, greedy-farthest) and the ALT metric
//	partition/ — node partitioning for arc-flag preprocessing
//	arcflag/   — arc-flag preprocessing and filtered query
//	ingest/    — consumer interface for an external OSM parser
//	tsvout/    — positional TSV output formatter
//	routeapi/  — demo HTTP query endpoint
//	cmd/       — example programs
//
// A typical pipeline: build a road.RoadGraph from ingest.Builder, reduce
// it with scc.Reduce, then either build a landmark.ALT and query with
// search.AStar, or partition it with partition.Rectangle, preprocess
// with arcflag.Preprocess, and query with arcflag.Query.
package pathcore
