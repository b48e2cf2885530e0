package sequence

import (
	"strings"

	"github.com/strandkit/strand/pkg/errors"
	"github.com/strandkit/strand/pkg/seqgraph"
)

// ParseOneLetter parses a block of one-letter residue code lines in the
// given alphabet. Lines are trimmed of surrounding whitespace; every
// remaining character must be present in the alphabet table.
//
// The lines need not come from a file - the IG and FASTA parsers feed
// their pre-extracted sequence blocks through here.
func ParseOneLetter(lines []string, kind Kind) (*Result, error) {
	table := kind.table()

	var monomers []string
	for i, line := range lines {
		for _, code := range strings.TrimSpace(line) {
			resname, ok := table[code]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidResidueCode,
					"cannot find %s residue match for %q (line %d)", kind, code, i+1)
			}
			monomers = append(monomers, resname)
		}
	}
	return &Result{Graph: seqgraph.Linear(monomers), Type: "one-letter"}, nil
}
