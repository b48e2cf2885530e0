package seqgraph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// negative. Sequence positions are non-negative integers.
	ErrInvalidNodeID = errors.New("node ID must not be negative")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with
	// the same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownEndpoint is returned by [Graph.AddEdge] when either
	// endpoint does not exist in the graph.
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")

	// ErrDisconnected is returned by [Graph.Validate] when the graph has
	// more than one connected component. Builder-produced chains are
	// always a single component.
	ErrDisconnected = errors.New("graph is not connected")
)

// Metadata stores arbitrary key-value pairs attached to nodes, edges, or
// the graph itself. JSON-imported graphs keep their extra node attributes
// here. Metadata maps are never nil after AddNode/AddEdge.
type Metadata map[string]any

// Node represents one residue position in the chain.
//
// For builder-produced graphs Resid is always ID+1; JSON-imported graphs
// may carry whatever the source file declared.
type Node struct {
	ID      int      // Position along the chain, 0-based
	Resname string   // Residue/monomer name (e.g., "ALA", "DA")
	Resid   int      // 1-based residue index
	Meta    Metadata // Extra attributes (never nil after AddNode)
}

// Edge is an undirected connection between two residue positions.
type Edge struct {
	From int
	To   int
	Meta Metadata // Extra attributes (never nil after AddEdge)
}

// Graph is an undirected attributed graph over integer node IDs.
// Node iteration order is insertion order, which the parsers use to
// guarantee ascending traversal.
//
// The zero value is not usable - use [New] to create a Graph.
// Graph is not safe for concurrent mutation without external locking.
type Graph struct {
	nodes map[int]*Node
	order []int // node IDs in insertion order
	edges []Edge
	adj   map[int][]int
	meta  Metadata
}

// New creates an empty Graph with optional graph-level metadata.
// The metadata parameter can be nil, in which case an empty map is created.
func New(meta Metadata) *Graph {
	if meta == nil {
		meta = Metadata{}
	}
	return &Graph{
		nodes: make(map[int]*Node),
		adj:   make(map[int][]int),
		meta:  meta,
	}
}

// Meta returns the graph-level metadata map. Never nil.
func (g *Graph) Meta() Metadata { return g.meta }

// AddNode adds a node to the graph. Returns ErrInvalidNodeID for negative
// IDs or ErrDuplicateNodeID if the ID is already present. The node's Meta
// field is initialized to an empty map if nil.
func (g *Graph) AddNode(n Node) error {
	if n.ID < 0 {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	g.nodes[node.ID] = node
	g.order = append(g.order, node.ID)
	return nil
}

// AddEdge adds an undirected edge between two existing nodes.
// Returns ErrUnknownEndpoint if either node doesn't exist. The edge's
// Meta field is initialized to an empty map if nil.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownEndpoint
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownEndpoint
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	g.edges = append(g.edges, e)
	g.adj[e.From] = append(g.adj[e.From], e.To)
	if e.From != e.To {
		g.adj[e.To] = append(g.adj[e.To], e.From)
	}
	return nil
}

// Node returns the node with the given ID and true, or nil and false if
// not found. The pointer refers to the actual node, so attribute
// modifications affect the graph.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
// The returned slice contains pointers to the actual node structs.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// NodeIDs returns the node IDs in insertion order.
func (g *Graph) NodeIDs() []int { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Neighbors returns the IDs adjacent to the node, in edge insertion
// order. The returned slice is a read-only view.
func (g *Graph) Neighbors(id int) []int { return g.adj[id] }

// Degree returns the number of edges incident to the node.
func (g *Graph) Degree(id int) int { return len(g.adj[id]) }

// HasEdge reports whether an edge exists between a and b in either
// orientation.
func (g *Graph) HasEdge(a, b int) bool {
	for _, e := range g.edges {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return true
		}
	}
	return false
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Validate checks graph integrity and returns nil if valid.
// It verifies that all edges reference existing nodes and that the graph
// forms a single connected component. Empty and single-node graphs are
// valid. Returns ErrUnknownEndpoint or ErrDisconnected.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if _, ok := g.nodes[e.From]; !ok {
			return ErrUnknownEndpoint
		}
		if _, ok := g.nodes[e.To]; !ok {
			return ErrUnknownEndpoint
		}
	}
	if len(g.nodes) < 2 {
		return nil
	}

	// Breadth-first sweep from the first inserted node.
	seen := make(map[int]bool, len(g.nodes))
	queue := []int{g.order[0]}
	seen[g.order[0]] = true
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range g.adj[id] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	if len(seen) != len(g.nodes) {
		return ErrDisconnected
	}
	return nil
}
