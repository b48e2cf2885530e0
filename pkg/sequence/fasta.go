package sequence

import "strings"

// Fasta parses FASTA files. Only the first record is honored; additional
// records produce a warning and are skipped.
//
// Kind selects the residue alphabet for the record body. The zero value
// parses amino-acid sequences, matching the pipeline default.
type Fasta struct {
	Kind Kind
}

func (Fasta) Type() string { return "fasta" }

func (Fasta) Supports(name string) bool { return hasExt(name, ".fasta", ".fa") }

// Parse reads path, strips the ">" header, and feeds the record body
// through the one-letter parser.
func (f Fasta) Parse(path string) (*Result, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var block []string
	var warnings []string
	headers := 0
	for _, line := range lines {
		if strings.ContainsRune(line, '>') {
			headers++
		}
		if headers > 1 {
			warnings = append(warnings,
				"found more than one sequence record; only the first one is used")
			break
		}
		// The header introducer doubles as the comment character, so
		// header lines collapse to nothing here.
		block = append(block, splitComment(line, '>'))
	}

	res, err := ParseOneLetter(block, f.Kind)
	if err != nil {
		return nil, err
	}
	res.Type = "fasta"
	res.Warnings = append(res.Warnings, warnings...)
	return res, nil
}
