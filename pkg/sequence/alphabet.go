package sequence

import (
	"maps"

	"github.com/strandkit/strand/pkg/errors"
)

// Kind selects one of the three one-letter residue alphabets.
type Kind int

const (
	// Protein is the amino-acid alphabet, the default everywhere.
	Protein Kind = iota
	// DNA maps the four bases to their deoxyribose residue names.
	DNA
	// RNA maps the four bases to ribonucleotide names (T becomes U).
	RNA
)

// String returns the lower-case name of the alphabet.
func (k Kind) String() string {
	switch k {
	case DNA:
		return "dna"
	case RNA:
		return "rna"
	default:
		return "protein"
	}
}

// ParseKind converts a user-supplied alphabet name to a Kind.
// Accepted names are "protein" (also "aa"), "dna", and "rna".
func ParseKind(name string) (Kind, error) {
	switch name {
	case "protein", "aa", "":
		return Protein, nil
	case "dna":
		return DNA, nil
	case "rna":
		return RNA, nil
	default:
		return Protein, errors.New(errors.ErrCodeInvalidKind, "unknown alphabet %q (want protein, dna, or rna)", name)
	}
}

// oneLetterProtein maps one-letter amino-acid codes to residue names,
// including the ambiguity codes (B, Z, X, J) and the rare residues
// selenocysteine (U) and pyrrolysine (O). Values are kept exactly as the
// consuming force-field tooling expects them.
var oneLetterProtein = map[rune]string{
	'A': "ALA",
	'R': "ARG",
	'N': "ASN",
	'D': "ASP",
	'C': "CYS",
	'Q': "GLB",
	'E': "GLU",
	'G': "GLY",
	'H': "HIS",
	'I': "ILE",
	'L': "LEU",
	'K': "LYS",
	'M': "MET",
	'F': "PHE",
	'P': "PRO",
	'O': "PLY",
	'S': "SER",
	'U': "SEC",
	'T': "THR",
	'W': "TRP",
	'Y': "TYR",
	'V': "VAL",
	'B': "ASX",
	'Z': "GLX",
	'X': "XAA",
	'J': "XLE",
}

var oneLetterDNA = map[rune]string{
	'A': "DA",
	'C': "DC",
	'G': "DG",
	'T': "DT",
}

var oneLetterRNA = map[rune]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "U",
}

// Residues returns a copy of the one-letter lookup table for the
// alphabet, keyed by code.
func Residues(k Kind) map[rune]string {
	return maps.Clone(k.table())
}

// table returns the immutable lookup table for the alphabet.
// Resolved once per parse call, not per character.
func (k Kind) table() map[rune]string {
	switch k {
	case DNA:
		return oneLetterDNA
	case RNA:
		return oneLetterRNA
	default:
		return oneLetterProtein
	}
}
