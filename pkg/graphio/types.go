package graphio

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/strandkit/strand/pkg/errors"
	"github.com/strandkit/strand/pkg/seqgraph"
)

// Wire keys handled outside the attribute map.
const (
	keyID      = "id"
	keySource  = "source"
	keyTarget  = "target"
	keyResname = "resname"
	keyResid   = "resid"
)

// Document is the canonical serialization format for sequence graphs.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	// Links mirrors Edges for networkx-style documents that use the
	// "links" key. Populated only on read; ignored when empty.
	Links []Edge `json:"links,omitempty"`
}

// Node is the wire form of a graph node. Attributes other than id,
// resname, and resid live in Meta and are flattened onto the node object
// in JSON, per the node-link convention.
type Node struct {
	ID      int
	Resname string
	Resid   int
	Meta    map[string]any
}

// Edge is the wire form of a graph edge. Extra attributes are flattened
// onto the edge object, like node attributes.
type Edge struct {
	Source int
	Target int
	Meta   map[string]any
}

// MarshalJSON flattens Meta onto the node object.
func (n Node) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(n.Meta)+3)
	for k, v := range n.Meta {
		obj[k] = v
	}
	obj[keyID] = n.ID
	if n.Resname != "" {
		obj[keyResname] = n.Resname
	}
	if n.Resid != 0 {
		obj[keyResid] = n.Resid
	}
	return json.Marshal(obj)
}

// UnmarshalJSON pulls id, resname, and resid out of the node object and
// keeps every other attribute in Meta. The id must be an integral JSON
// number; anything else fails with MALFORMED_INPUT.
func (n *Node) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	raw, ok := obj[keyID]
	if !ok {
		return errors.New(errors.ErrCodeMalformedInput, "node object without id")
	}
	id, err := intAttr(raw)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMalformedInput, err, "node id %v", raw)
	}
	n.ID = id
	delete(obj, keyID)

	if v, ok := obj[keyResname].(string); ok {
		n.Resname = v
		delete(obj, keyResname)
	}
	if v, ok := obj[keyResid]; ok {
		if resid, err := intAttr(v); err == nil {
			n.Resid = resid
			delete(obj, keyResid)
		}
	}

	if len(obj) > 0 {
		n.Meta = obj
	}
	return nil
}

// MarshalJSON flattens Meta onto the edge object.
func (e Edge) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(e.Meta)+2)
	for k, v := range e.Meta {
		obj[k] = v
	}
	obj[keySource] = e.Source
	obj[keyTarget] = e.Target
	return json.Marshal(obj)
}

// UnmarshalJSON pulls source and target out of the edge object and keeps
// every other attribute in Meta.
func (e *Edge) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	for _, key := range []string{keySource, keyTarget} {
		raw, ok := obj[key]
		if !ok {
			return errors.New(errors.ErrCodeMalformedInput, "edge object without %s", key)
		}
		v, err := intAttr(raw)
		if err != nil {
			return errors.Wrap(errors.ErrCodeMalformedInput, err, "edge %s %v", key, raw)
		}
		if key == keySource {
			e.Source = v
		} else {
			e.Target = v
		}
		delete(obj, key)
	}

	if len(obj) > 0 {
		e.Meta = obj
	}
	return nil
}

// intAttr converts a decoded JSON value to an int, rejecting strings,
// fractions, and other non-integral values.
func intAttr(v any) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("must be a number, got %T", v)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("must be an integer, got %v", f)
	}
	return int(f), nil
}

// FromGraph converts a sequence graph to its serialization format.
// Nodes are sorted by ID for deterministic output.
func FromGraph(g *seqgraph.Graph) Document {
	nodes := g.Nodes()
	slices.SortFunc(nodes, func(a, b *seqgraph.Node) int { return a.ID - b.ID })

	doc := Document{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for i, n := range nodes {
		doc.Nodes[i] = Node{ID: n.ID, Resname: n.Resname, Resid: n.Resid, Meta: copyMeta(n.Meta)}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{Source: e.From, Target: e.To, Meta: copyMeta(e.Meta)})
	}
	return doc
}

// ToGraph converts a Document to a sequence graph. Nodes are inserted in
// ascending id order so that graph iteration is ascending regardless of
// the order nodes appeared in the source; edges and their attributes are
// copied unchanged.
func ToGraph(doc Document) (*seqgraph.Graph, error) {
	nodes := slices.Clone(doc.Nodes)
	slices.SortFunc(nodes, func(a, b Node) int { return a.ID - b.ID })

	g := seqgraph.New(nil)
	for _, n := range nodes {
		err := g.AddNode(seqgraph.Node{ID: n.ID, Resname: n.Resname, Resid: n.Resid, Meta: copyMeta(n.Meta)})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "add node %d", n.ID)
		}
	}

	edges := doc.Edges
	if len(edges) == 0 {
		edges = doc.Links
	}
	for _, e := range edges {
		err := g.AddEdge(seqgraph.Edge{From: e.Source, To: e.Target, Meta: copyMeta(e.Meta)})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "add edge %d-%d", e.Source, e.Target)
		}
	}
	return g, nil
}

// copyMeta creates a shallow copy of an attribute map to avoid mutation.
func copyMeta(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
