// Package sequence converts plain-text residue sequence descriptions into
// sequence graphs. It understands five serializations: delimited text,
// one-letter residue blocks, the IG sequence format, FASTA, and node-link
// JSON graphs.
//
// Each parser returns a [Result] carrying the graph together with any
// diagnostic warnings (for example "more than one sequence found, only the
// first is used"). Warnings never abort a parse; structural problems and
// unknown residue codes fail with coded errors from pkg/errors.
//
// [Detect] selects a parser from a filename, so callers can route on
// extension the way the consuming pipeline does:
//
//	parser, err := sequence.Detect("chain.fasta")
//	if err != nil {
//	    return err
//	}
//	res, err := parser.Parse("chain.fasta")
package sequence
