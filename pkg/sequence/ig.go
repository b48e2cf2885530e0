package sequence

import (
	"strings"

	"github.com/strandkit/strand/pkg/errors"
)

// igComment is the IG-format inline comment character. Note this is not
// the FASTA ">".
const igComment = ';'

// IG parses the IG sequence format: one-letter code lines followed by a
// terminator line containing "1" (linear) or "2" (circular).
type IG struct{}

func (IG) Type() string { return "ig" }

func (IG) Supports(name string) bool { return hasExt(name, ".ig") }

// Parse reads path and converts the first terminated sequence. Inline
// comments are stripped per line. A "2" terminator closes the chain into
// a cycle with an edge from the last residue back to the first. Content
// remaining after the terminator is ignored with a warning.
//
// A file without a terminator line fails with MALFORMED_SEQUENCE.
func (IG) Parse(path string) (*Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var block []string
	terminator := ""
	rest := 0
	for i, line := range lines {
		content := strings.TrimSpace(splitComment(line, igComment))
		if content == "1" || content == "2" {
			terminator = content
			rest = len(lines) - i - 1
			break
		}
		block = append(block, content)
	}
	if terminator == "" {
		return nil, errors.New(errors.ErrCodeMalformedSequence,
			"%s: no sequence terminator line (1 or 2) found", path)
	}

	res, err := ParseOneLetter(block, Protein)
	if err != nil {
		return nil, err
	}
	res.Type = "ig"
	if terminator == "2" {
		res.Graph.Cyclize()
	}
	if rest > 0 {
		res.Warnings = append(res.Warnings,
			"found more than one sequence; only the first one is used")
	}
	return res, nil
}
