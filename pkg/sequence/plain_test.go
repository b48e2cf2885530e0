package sequence

import (
	"testing"

	"github.com/strandkit/strand/pkg/errors"
)

func TestParseTxt(t *testing.T) {
	path := writeFile(t, "chain.txt", "ALA GLY SER\nTHR  VAL\n")

	res, err := Txt{}.Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	checkChain(t, res.Graph, []string{"ALA", "GLY", "SER", "THR", "VAL"})
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", res.Warnings)
	}
}

func TestParseCSV(t *testing.T) {
	path := writeFile(t, "chain.csv", "ALA,GLY,SER\nTHR,VAL\n")

	res, err := CSV{}.Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	checkChain(t, res.Graph, []string{"ALA", "GLY", "SER", "THR", "VAL"})
}

// The same token sequence must produce identical graphs regardless of the
// delimiter that carried it.
func TestCSVAndTxtAgree(t *testing.T) {
	txt, err := Txt{}.Parse(writeFile(t, "chain.txt", "ALA GLY\nSER"))
	if err != nil {
		t.Fatal(err)
	}
	csv, err := CSV{}.Parse(writeFile(t, "chain.csv", "ALA,GLY\nSER"))
	if err != nil {
		t.Fatal(err)
	}

	if txt.Graph.NodeCount() != csv.Graph.NodeCount() {
		t.Fatalf("node counts differ: %d vs %d", txt.Graph.NodeCount(), csv.Graph.NodeCount())
	}
	tn, cn := txt.Graph.Nodes(), csv.Graph.Nodes()
	for i := range tn {
		if tn[i].Resname != cn[i].Resname || tn[i].Resid != cn[i].Resid {
			t.Errorf("node %d differs: %+v vs %+v", i, tn[i], cn[i])
		}
	}
	if txt.Graph.EdgeCount() != csv.Graph.EdgeCount() {
		t.Errorf("edge counts differ")
	}
}

func TestParseDelimitedCustom(t *testing.T) {
	path := writeFile(t, "chain.dat", "ALA|GLY||SER|\n")

	res, err := ParseDelimited(path, "|")
	if err != nil {
		t.Fatalf("ParseDelimited: %v", err)
	}
	// Empty tokens from doubled or trailing delimiters are dropped.
	checkChain(t, res.Graph, []string{"ALA", "GLY", "SER"})
}

func TestParseDelimitedEmptyFile(t *testing.T) {
	res, err := ParseDelimited(writeFile(t, "empty.txt", ""), " ")
	if err != nil {
		t.Fatalf("ParseDelimited: %v", err)
	}
	if res.Graph.NodeCount() != 0 {
		t.Errorf("nodes = %d, want 0", res.Graph.NodeCount())
	}
}

func TestParseTxtMissingFile(t *testing.T) {
	_, err := Txt{}.Parse("does-not-exist.txt")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
