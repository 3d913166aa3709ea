package scc

import "github.com/routeweaver/pathcore/graph"

// Components computes the strongly-connected components of g using
// Tarjan's algorithm, iteratively (an explicit stack stands in for
// recursion). The returned slices are in first-finished order; within
// each component, nodes appear in reverse discovery order (the
// component's root, the first node discovered, comes last).
func Components(g *graph.Graph) [][]int {
	nodes := g.Nodes()

	index := make(map[int]int, len(nodes))
	lowlink := make(map[int]int, len(nodes))
	onStack := make(map[int]bool, len(nodes))
	var stack []int
	var components [][]int
	nextIndex := 0

	type frame struct {
		node    int
		edgeIdx int
		edges   []*graph.Edge
	}

	var visit func(start int)
	visit = func(start int) {
		var work []frame
		push := func(n int) {
			index[n] = nextIndex
			lowlink[n] = nextIndex
			nextIndex++
			stack = append(stack, n)
			onStack[n] = true
			work = append(work, frame{node: n, edges: g.Outgoing(n)})
		}
		push(start)

		for len(work) > 0 {
			top := &work[len(work)-1]

			if top.edgeIdx < len(top.edges) {
				e := top.edges[top.edgeIdx]
				top.edgeIdx++
				w := e.To

				if _, seen := index[w]; !seen {
					push(w)
					continue
				}
				if onStack[w] {
					if index[w] < lowlink[top.node] {
						lowlink[top.node] = index[w]
					}
				}
				continue
			}

			// all edges of top.node explored; pop the frame
			v := top.node
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if lowlink[v] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				var comp []int
				for {
					n := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[n] = false
					comp = append(comp, n)
					if n == v {
						break
					}
				}
				components = append(components, comp)
			}
		}
	}

	for _, n := range nodes {
		if _, seen := index[n.ID]; !seen {
			visit(n.ID)
		}
	}
	return components
}

// Largest returns the component of maximum cardinality among comps. Ties
// are broken by first occurrence in comps.
func Largest(comps [][]int) []int {
	var best []int
	for _, c := range comps {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}

// Reduce computes g's SCCs and keeps only the largest, deleting every
// other node and its incident edges via graph.Graph.Reduce. On an empty
// graph this is a no-op (spec.md §7 EmptyGraph). Returns the retained
// node ids.
func Reduce(g *graph.Graph) []int {
	if g.Size() == 0 {
		return nil
	}

	comps := Components(g)
	largest := Largest(comps)

	keep := make(map[int]bool, len(largest))
	for _, id := range largest {
		keep[id] = true
	}
	g.Reduce(func(id int) bool { return keep[id] })

	return largest
}
