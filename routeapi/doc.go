// Package routeapi is a demo HTTP query endpoint, an external
// collaborator of the core per spec.md §6: it translates a JSON route
// request into a search.Dijkstra/search.AStar call and serializes the
// resulting routepath.Path back out. It carries no correctness
// obligations of its own.
package routeapi
