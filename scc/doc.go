// Package scc computes the strongly-connected components of a
// graph.Graph and reduces it to its largest component.
//
// Notes on implementation choices:
//
//   - Tarjan's algorithm is used: a single depth-first traversal with a
//     node stack and low-link values, linear in |V|+|E|.
//   - Recursion is avoided in favor of an explicit stack so pathologically
//     long chains (a common shape in real road networks) cannot blow the
//     Go stack's growth limits.
//   - Node iteration order comes from graph.Graph.Nodes(), so the
//     resulting component ordering — and therefore the tie-break among
//     maximum-cardinality components — is deterministic for a given
//     Nodes() order. Nodes() follows Go map iteration, which is not
//     fixed from one call to the next, so on a graph with several
//     largest components two calls may keep different ones.
package scc
