package sequence

import (
	"strings"
	"testing"

	"github.com/strandkit/strand/pkg/errors"
)

func TestParseOneLetter(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		kind  Kind
		want  []string
	}{
		{
			name:  "Protein",
			lines: []string{"ACDEFG"},
			kind:  Protein,
			want:  []string{"ALA", "CYS", "ASP", "GLU", "PHE", "GLY"},
		},
		{
			name:  "DNA",
			lines: []string{"ACGT"},
			kind:  DNA,
			want:  []string{"DA", "DC", "DG", "DT"},
		},
		{
			name:  "RNA",
			lines: []string{"ACGT"},
			kind:  RNA,
			want:  []string{"A", "C", "G", "U"},
		},
		{
			name:  "MultiLine",
			lines: []string{"AC", "  GT  ", ""},
			kind:  DNA,
			want:  []string{"DA", "DC", "DG", "DT"},
		},
		{
			name:  "AmbiguityCodes",
			lines: []string{"BZXJ"},
			kind:  Protein,
			want:  []string{"ASX", "GLX", "XAA", "XLE"},
		},
		{
			name:  "Empty",
			lines: nil,
			kind:  Protein,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseOneLetter(tt.lines, tt.kind)
			if err != nil {
				t.Fatalf("ParseOneLetter: %v", err)
			}
			checkChain(t, res.Graph, tt.want)
		})
	}
}

func TestParseOneLetterInvalidCode(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		kind  Kind
	}{
		{"UnknownProtein", []string{"A2C"}, Protein},
		// T maps in DNA, but U only exists in the protein and RNA tables.
		{"DNAWithU", []string{"ACGU"}, DNA},
		{"RNAUnknown", []string{"ACGN"}, RNA},
		{"InternalSpace", []string{"AC GT"}, DNA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOneLetter(tt.lines, tt.kind)
			if !errors.Is(err, errors.ErrCodeInvalidResidueCode) {
				t.Errorf("code = %v, want INVALID_RESIDUE_CODE (err: %v)", errors.GetCode(err), err)
			}
		})
	}
}

func TestParseOneLetterErrorNamesOffender(t *testing.T) {
	_, err := ParseOneLetter([]string{"ACGT", "ACG%"}, DNA)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, `'%'`) {
		t.Errorf("error %q does not name the offending character", msg)
	}
	if !strings.Contains(msg, "line 2") {
		t.Errorf("error %q does not name the line", msg)
	}
}
