// Package landmark selects landmark nodes and builds the ALT
// (A*, Landmarks, Triangle inequality) lower-bound metric consumed by
// search.AStar.
//
// Notes on implementation choices:
//
//   - Both the forward table (landmark -> node) and the reverse table
//     (node -> landmark, computed via a one-to-all Dijkstra on the
//     reversed graph) are stored, because road graphs may contain
//     one-way edges and a single direction is not sufficient to bound
//     cost(v, t) when t is the destination, not the source.
//   - A missing table entry means "unreachable" and contributes a zero
//     term to the lower bound rather than being treated as infinite —
//     the bound must never overestimate.
package landmark
