package graph

// AddNode inserts a node with the given id if absent. It reports whether
// the id was new; adding an already-present id is a no-op.
//
// Complexity: O(1).
func (g *Graph) AddNode(id int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return false
	}
	g.nodes[id] = Node{ID: id}
	return true
}

// AddEdge creates a directed edge from → to with the given cost. Both
// endpoints must already be present (ErrUnknownNode otherwise); cost must
// be non-negative (ErrInvalidCost otherwise). Adding the same edge twice
// is permitted — edges are never deduplicated.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, cost float64) (*Edge, error) {
	if cost < 0 {
		return nil, ErrInvalidCost
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return nil, ErrUnknownNode
	}
	if _, ok := g.nodes[to]; !ok {
		return nil, ErrUnknownNode
	}

	g.nextEdgeID++
	e := &Edge{ID: g.nextEdgeID, From: from, To: to, Cost: cost}
	g.outgoing[from] = append(g.outgoing[from], e)
	g.incoming[to] = append(g.incoming[to], e)
	g.edgeCount++
	return e, nil
}

// GetNode returns the node for id and whether it is present.
func (g *Graph) GetNode(id int) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns a snapshot of every node currently in the graph. Order is
// stable within this single call but not guaranteed across mutations.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// Outgoing returns the edges leaving id, or nil if id has none or does
// not exist. The returned slice must not be mutated by callers.
func (g *Graph) Outgoing(id int) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.outgoing[id]
}

// Incoming returns the edges arriving at id, or nil if id has none or
// does not exist. The returned slice must not be mutated by callers.
func (g *Graph) Incoming(id int) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.incoming[id]
}

// Size returns the number of nodes in the graph.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph, in O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Reversed returns a new Graph with every node of g and every edge
// flipped (from/to swapped, cost preserved). Landmark table construction
// and arc-flag preprocessing both need a reverse-direction Dijkstra; this
// builds the graph that runs it on rather than threading a direction
// flag through the search skeleton.
func (g *Graph) Reversed() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rev := New(WithCapacityHint(len(g.nodes)))
	for id := range g.nodes {
		rev.AddNode(id)
	}
	for _, edges := range g.outgoing {
		for _, e := range edges {
			rev.AddEdge(e.To, e.From, e.Cost)
		}
	}
	return rev
}

// Reduce removes every node failing keep and every edge touching such a
// node. It is the mutation SCC reduction builds on: after Reduce, edge
// and node counts reflect only the retained subgraph.
//
// Complexity: O(V+E).
func (g *Graph) Reduce(keep func(id int) bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id := range g.nodes {
		if !keep(id) {
			delete(g.nodes, id)
			delete(g.outgoing, id)
			delete(g.incoming, id)
		}
	}

	g.edgeCount = 0
	for from, edges := range g.outgoing {
		if _, ok := g.nodes[from]; !ok {
			delete(g.outgoing, from)
			continue
		}
		kept := edges[:0]
		for _, e := range edges {
			if _, ok := g.nodes[e.To]; ok {
				kept = append(kept, e)
			}
		}
		g.outgoing[from] = kept
		g.edgeCount += len(kept)
	}
	for to, edges := range g.incoming {
		if _, ok := g.nodes[to]; !ok {
			delete(g.incoming, to)
			continue
		}
		kept := edges[:0]
		for _, e := range edges {
			if _, ok := g.nodes[e.From]; ok {
				kept = append(kept, e)
			}
		}
		g.incoming[to] = kept
	}
}
