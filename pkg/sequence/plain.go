package sequence

import (
	"strings"

	"github.com/strandkit/strand/pkg/seqgraph"
)

// ParseDelimited parses a plain delimited residue-name file. Every line
// is split on delim and all tokens are flattened, in order, into one
// monomer list; line breaks carry no meaning. Empty tokens (consecutive
// delimiters, trailing delimiters) are skipped.
func ParseDelimited(path, delim string) (*Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var monomers []string
	for _, line := range lines {
		for _, token := range strings.Split(strings.TrimSpace(line), delim) {
			if token = strings.TrimSpace(token); token != "" {
				monomers = append(monomers, token)
			}
		}
	}
	return &Result{Graph: seqgraph.Linear(monomers), Type: "delimited"}, nil
}

// Txt parses whitespace-delimited residue-name files.
type Txt struct{}

func (Txt) Type() string { return "txt" }

func (Txt) Supports(name string) bool { return hasExt(name, ".txt", ".seq") }

// Parse reads path, splitting every line on whitespace.
func (Txt) Parse(path string) (*Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var monomers []string
	for _, line := range lines {
		monomers = append(monomers, strings.Fields(line)...)
	}
	return &Result{Graph: seqgraph.Linear(monomers), Type: "txt"}, nil
}

// CSV parses comma-delimited residue-name files.
type CSV struct{}

func (CSV) Type() string { return "csv" }

func (CSV) Supports(name string) bool { return hasExt(name, ".csv") }

// Parse reads path with the delimiter fixed to ",".
func (CSV) Parse(path string) (*Result, error) {
	res, err := ParseDelimited(path, ",")
	if err != nil {
		return nil, err
	}
	res.Type = "csv"
	return res, nil
}
