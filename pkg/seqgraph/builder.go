package seqgraph

// Linear builds the path graph for an ordered monomer list: nodes 0..N-1
// with Resname taken from the input order, Resid = position+1, and edges
// (i, i+1) for consecutive positions.
//
// An empty monomer list yields an empty graph rather than an error, so
// parsers can pass through empty files unchanged.
func Linear(monomers []string) *Graph {
	g := New(nil)
	for i, resname := range monomers {
		// AddNode only fails on negative or duplicate IDs, neither of
		// which can occur here.
		_ = g.AddNode(Node{ID: i, Resname: resname, Resid: i + 1})
		if i > 0 {
			_ = g.AddEdge(Edge{From: i - 1, To: i})
		}
	}
	return g
}

// Cyclize closes the chain into a cycle by adding one edge from the last
// node back to node 0. Circular sequences (IG terminator "2") use this.
// Graphs with fewer than two nodes are left unchanged.
func (g *Graph) Cyclize() {
	if len(g.order) < 2 {
		return
	}
	last := g.order[len(g.order)-1]
	first := g.order[0]
	if !g.HasEdge(last, first) {
		_ = g.AddEdge(Edge{From: last, To: first})
	}
}
