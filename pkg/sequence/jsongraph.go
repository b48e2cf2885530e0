package sequence

import "github.com/strandkit/strand/pkg/graphio"

// JSONGraph parses node-link JSON graph files. Unlike the text parsers it
// deserializes an already-structured graph; the only transformation is
// node-order normalization (ascending numeric id), which graphio.ReadFile
// performs.
type JSONGraph struct{}

func (JSONGraph) Type() string { return "json" }

func (JSONGraph) Supports(name string) bool { return hasExt(name, ".json") }

// Parse reads a node-link JSON document. Node attributes and edges are
// copied unchanged; node iteration order of the result is ascending id.
func (JSONGraph) Parse(path string) (*Result, error) {
	g, err := graphio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Result{Graph: g, Type: "json"}, nil
}
