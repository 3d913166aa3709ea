// Package arcflag computes per-edge region-reachability flags and
// answers shortest-path queries restricted to flagged edges.
//
// Notes on implementation choices:
//
//   - Flags are stored out-of-band, keyed by graph.Edge.ID, rather than
//     mutating graph.Edge itself — the data model doc says edges "may be
//     mutated only by adding a reduction"; flags are exactly that kind
//     of post-construction annotation, and keeping them external avoids
//     widening graph.Edge for every other package's sake.
//   - Preprocessing runs one reverse-direction Dijkstra per boundary
//     node per region; this is the straightforward O(r * boundary nodes
//     * Dijkstra) construction the spec describes, not an optimized
//     incremental variant.
package arcflag
