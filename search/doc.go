// Package search implements the generic best-first exploration routine
// shared by Dijkstra, A*, and arc-flag queries, plus thin wrappers for
// each.
//
// Notes on implementation choices:
//
//   - We use a "lazy decrease-key" priority queue, mirroring the
//     dijkstra-on-strings implementation this generalizes: a node may be
//     pushed multiple times, and a pop is discarded if its cost exceeds
//     the node's current best-known cost.
//   - The priority key is tentative-cost + estimator value, so a zero
//     estimator degenerates exactly to Dijkstra and a non-zero admissible
//     estimator biases exploration toward the destination (A*) without
//     changing the loop itself.
//   - Ties in priority are broken by insertion (sequence) order, not by
//     node id, to keep the result deterministic regardless of map
//     iteration order elsewhere in the program.
package search
