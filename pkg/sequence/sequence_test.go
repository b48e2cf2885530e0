package sequence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strandkit/strand/pkg/errors"
	"github.com/strandkit/strand/pkg/seqgraph"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// checkChain verifies g is the path graph over the given residue names.
func checkChain(t *testing.T, g *seqgraph.Graph, resnames []string) {
	t.Helper()
	if g.NodeCount() != len(resnames) {
		t.Fatalf("nodes = %d, want %d", g.NodeCount(), len(resnames))
	}
	for i, n := range g.Nodes() {
		if n.ID != i || n.Resname != resnames[i] || n.Resid != i+1 {
			t.Errorf("node %d = {ID:%d Resname:%q Resid:%d}, want {%d %q %d}",
				i, n.ID, n.Resname, n.Resid, i, resnames[i], i+1)
		}
	}
	for i := 0; i < len(resnames)-1; i++ {
		if !g.HasEdge(i, i+1) {
			t.Errorf("missing path edge %d-%d", i, i+1)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		file     string
		wantType string
	}{
		{"chain.csv", "csv"},
		{"chain.txt", "txt"},
		{"chain.seq", "txt"},
		{"chain.ig", "ig"},
		{"chain.fasta", "fasta"},
		{"chain.fa", "fasta"},
		{"chain.FASTA", "fasta"},
		{"chain.json", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			p, err := Detect(tt.file)
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if p.Type() != tt.wantType {
				t.Errorf("Type = %q, want %q", p.Type(), tt.wantType)
			}
		})
	}
}

func TestDetectUnknown(t *testing.T) {
	_, err := Detect("chain.pdb")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestByType(t *testing.T) {
	p, err := ByType("ig")
	if err != nil {
		t.Fatal(err)
	}
	if p.Type() != "ig" {
		t.Errorf("Type = %q, want ig", p.Type())
	}
	if _, err := ByType("gff"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		want    Kind
		wantErr bool
	}{
		{"protein", Protein, false},
		{"aa", Protein, false},
		{"", Protein, false},
		{"dna", DNA, false},
		{"rna", RNA, false},
		{"peptide", Protein, true},
	}

	for _, tt := range tests {
		k, err := ParseKind(tt.name)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidKind) {
				t.Errorf("%q: code = %v, want INVALID_KIND", tt.name, errors.GetCode(err))
			}
			continue
		}
		if err != nil || k != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", tt.name, k, err, tt.want)
		}
	}
}

func TestSplitComment(t *testing.T) {
	tests := []struct {
		line    string
		comment byte
		want    string
	}{
		{"ACDE ; a comment", ';', "ACDE "},
		{"ACDE", ';', "ACDE"},
		{">header only", '>', ""},
		{"; leading", ';', ""},
	}

	for _, tt := range tests {
		if got := splitComment(tt.line, tt.comment); got != tt.want {
			t.Errorf("splitComment(%q, %q) = %q, want %q", tt.line, tt.comment, got, tt.want)
		}
	}
}
