package seqgraph

import (
	"errors"
	"testing"
)

func TestAddNode(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		wantErr error
	}{
		{
			name:  "Simple",
			nodes: []Node{{ID: 0, Resname: "ALA", Resid: 1}, {ID: 1, Resname: "GLY", Resid: 2}},
		},
		{
			name:    "Negative",
			nodes:   []Node{{ID: -1, Resname: "ALA"}},
			wantErr: ErrInvalidNodeID,
		},
		{
			name:    "Duplicate",
			nodes:   []Node{{ID: 0, Resname: "ALA"}, {ID: 0, Resname: "GLY"}},
			wantErr: ErrDuplicateNodeID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(nil)
			var err error
			for _, n := range tt.nodes {
				if err = g.AddNode(n); err != nil {
					break
				}
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddNodeInitializesMeta(t *testing.T) {
	g := New(nil)
	if err := g.AddNode(Node{ID: 0, Resname: "ALA"}); err != nil {
		t.Fatal(err)
	}
	n, ok := g.Node(0)
	if !ok {
		t.Fatal("node 0 not found")
	}
	if n.Meta == nil {
		t.Error("Meta not initialized")
	}
}

func TestAddEdge(t *testing.T) {
	g := New(nil)
	g.AddNode(Node{ID: 0})
	g.AddNode(Node{ID: 1})

	if err := g.AddEdge(Edge{From: 0, To: 1}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(Edge{From: 0, To: 5}); !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("err = %v, want ErrUnknownEndpoint", err)
	}

	if !g.HasEdge(0, 1) || !g.HasEdge(1, 0) {
		t.Error("edge 0-1 should exist in both orientations")
	}
	if g.HasEdge(1, 2) {
		t.Error("edge 1-2 should not exist")
	}
}

func TestNodesInsertionOrder(t *testing.T) {
	g := New(nil)
	for _, id := range []int{2, 0, 1} {
		g.AddNode(Node{ID: id})
	}
	want := []int{2, 0, 1}
	got := g.NodeIDs()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NodeIDs = %v, want %v", got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Graph
		wantErr error
	}{
		{
			name:  "Empty",
			build: func() *Graph { return New(nil) },
		},
		{
			name: "SingleNode",
			build: func() *Graph {
				g := New(nil)
				g.AddNode(Node{ID: 0})
				return g
			},
		},
		{
			name:  "Path",
			build: func() *Graph { return Linear([]string{"ALA", "GLY", "SER"}) },
		},
		{
			name: "Disconnected",
			build: func() *Graph {
				g := New(nil)
				g.AddNode(Node{ID: 0})
				g.AddNode(Node{ID: 1})
				return g
			},
			wantErr: ErrDisconnected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.build().Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLinear(t *testing.T) {
	monomers := []string{"ALA", "CYS", "ASP", "GLU"}
	g := Linear(monomers)

	if g.NodeCount() != len(monomers) {
		t.Fatalf("nodes = %d, want %d", g.NodeCount(), len(monomers))
	}
	if g.EdgeCount() != len(monomers)-1 {
		t.Fatalf("edges = %d, want %d", g.EdgeCount(), len(monomers)-1)
	}

	for i, n := range g.Nodes() {
		if n.ID != i {
			t.Errorf("node %d: ID = %d", i, n.ID)
		}
		if n.Resname != monomers[i] {
			t.Errorf("node %d: Resname = %q, want %q", i, n.Resname, monomers[i])
		}
		if n.Resid != i+1 {
			t.Errorf("node %d: Resid = %d, want %d", i, n.Resid, i+1)
		}
	}

	for i := 0; i < len(monomers)-1; i++ {
		if !g.HasEdge(i, i+1) {
			t.Errorf("missing path edge %d-%d", i, i+1)
		}
	}

	if err := g.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLinearEmpty(t *testing.T) {
	g := Linear(nil)
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("empty input: nodes = %d, edges = %d, want 0, 0", g.NodeCount(), g.EdgeCount())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestCyclize(t *testing.T) {
	g := Linear([]string{"DA", "DC", "DG", "DT"})
	g.Cyclize()

	if g.EdgeCount() != 4 {
		t.Fatalf("edges = %d, want 4", g.EdgeCount())
	}
	if !g.HasEdge(3, 0) {
		t.Error("missing cycle-closing edge 3-0")
	}

	// Idempotent: a second call adds nothing.
	g.Cyclize()
	if g.EdgeCount() != 4 {
		t.Errorf("edges after second Cyclize = %d, want 4", g.EdgeCount())
	}
}

func TestCyclizeTinyGraphs(t *testing.T) {
	for _, monomers := range [][]string{nil, {"ALA"}} {
		g := Linear(monomers)
		before := g.EdgeCount()
		g.Cyclize()
		if g.EdgeCount() != before {
			t.Errorf("%d-node graph: Cyclize added an edge", g.NodeCount())
		}
	}
}
