package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strandkit/strand/pkg/sequence"
)

// newAlphabetsCmd creates the alphabets command, which prints the
// one-letter residue code tables used by the sequence parsers.
func newAlphabetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "alphabets [protein|dna|rna]",
		Short:     "Print the one-letter residue code tables",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"protein", "dna", "rna"},
		RunE: func(c *cobra.Command, args []string) error {
			kinds := []sequence.Kind{sequence.Protein, sequence.DNA, sequence.RNA}
			if len(args) == 1 {
				kind, err := sequence.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []sequence.Kind{kind}
			}
			for i, kind := range kinds {
				if i > 0 {
					fmt.Println()
				}
				printAlphabet(kind)
			}
			return nil
		},
	}
}

// printAlphabet prints one alphabet as a code-to-residue listing,
// sorted by code.
func printAlphabet(kind sequence.Kind) {
	table := sequence.Residues(kind)

	codes := make([]rune, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	fmt.Println(StyleTitle.Render(strings.ToUpper(kind.String())))
	for _, code := range codes {
		fmt.Printf("  %s %s %s\n",
			StyleValue.Render(string(code)),
			StyleDim.Render(iconArrow),
			StyleValue.Render(table[code]))
	}
}
