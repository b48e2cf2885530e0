package graphio

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/strandkit/strand/pkg/errors"
	"github.com/strandkit/strand/pkg/seqgraph"
)

// Marshal converts a sequence graph to JSON bytes.
// Nodes are sorted by ID for deterministic output.
func Marshal(g *seqgraph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a sequence graph as indented JSON to w.
func Write(g *seqgraph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode graph")
	}
	return nil
}

// WriteFile writes a sequence graph to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(g *seqgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer f.Close()
	return Write(g, f)
}

// Read decodes a node-link JSON graph from r.
// Node iteration order of the result is ascending id order.
func Read(r io.Reader) (*seqgraph.Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode graph")
	}
	return ToGraph(doc)
}

// ReadFile reads a node-link JSON file and returns the decoded graph.
func ReadFile(path string) (*seqgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}
