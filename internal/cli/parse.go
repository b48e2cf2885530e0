package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/strandkit/strand/pkg/graphio"
	"github.com/strandkit/strand/pkg/seqgraph"
	"github.com/strandkit/strand/pkg/sequence"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	format    string // force a format instead of filename detection
	alphabet  string // residue alphabet for FASTA input
	delimiter string // token separator for delimited files
	circular  bool   // close the chain into a cycle
	output    string // output file path (stdout if empty)
}

// newParseCmd creates the parse command. It converts a sequence file
// into a molecular graph and writes it as node-link JSON.
//
// The input format is detected from the file extension unless --format
// is given. When the argument is a directory, an interactive picker
// lists the sequence files inside it.
func newParseCmd() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse <file-or-dir>",
		Short: "Parse a sequence file into a molecular graph",
		Long: `Parse a residue sequence file into a molecular graph.

The format is detected from the file extension. Supported inputs are
plain text (.txt, .seq), comma-separated (.csv), Intelligenetics (.ig),
FASTA (.fasta, .fa), and node-link JSON (.json).

Examples:
  strand parse chain.fasta                      # FASTA, protein alphabet
  strand parse chain.fasta --alphabet dna       # FASTA, DNA alphabet
  strand parse plasmid.ig -o plasmid.json       # Intelligenetics to file
  strand parse residues.txt --format txt        # Force the format
  strand parse ./sequences                      # Pick a file interactively`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runParse(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: txt, csv, ig, fasta, json (default: detect)")
	cmd.Flags().StringVarP(&opts.alphabet, "alphabet", "a", "", "residue alphabet for FASTA: protein (default), dna, rna")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", "", "token separator for delimited files")
	cmd.Flags().BoolVar(&opts.circular, "circular", false, "close the chain into a cycle")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runParse resolves the input file, parses it, and writes the graph.
// Config values fill in flags the user left unset.
func runParse(ctx context.Context, input string, opts *parseOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	if opts.alphabet == "" {
		opts.alphabet = cfg.Alphabet
	}

	info, err := os.Stat(input)
	if err == nil && info.IsDir() {
		if input, err = pickSequenceFile(input); err != nil {
			return err
		}
	}

	res, err := parseSequence(input, opts, cfg)
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		printWarning("%s", w)
	}
	if opts.circular {
		res.Graph.Cyclize()
	}

	logger.Infof("Parsed %s (%s)", input, res.Type)
	printStats(res.Graph.NodeCount(), res.Graph.EdgeCount())

	return writeGraph(res.Graph, opts.output, logger)
}

// parseSequence selects a parser and runs it. Flags always beat config
// values: an explicit --format wins over everything, an explicit
// --delimiter treats the file as delimited text, then config format,
// then filename detection. A delimiter from config applies only when
// detection finds no match, so it never hijacks a recognized extension.
func parseSequence(input string, opts *parseOpts, cfg Config) (*sequence.Result, error) {
	var parser sequence.FormatParser
	var err error
	switch {
	case opts.format != "":
		parser, err = sequence.ByType(opts.format)
	case opts.delimiter != "":
		return sequence.ParseDelimited(input, opts.delimiter)
	case cfg.Format != "":
		parser, err = sequence.ByType(cfg.Format)
	default:
		parser, err = sequence.Detect(input)
		if err != nil && cfg.Delimiter != "" {
			return sequence.ParseDelimited(input, cfg.Delimiter)
		}
	}
	if err != nil {
		return nil, err
	}

	if f, ok := parser.(*sequence.Fasta); ok {
		kind, err := sequence.ParseKind(opts.alphabet)
		if err != nil {
			return nil, err
		}
		f.Kind = kind
	}

	return parser.Parse(input)
}

// writeGraph serializes g as node-link JSON to path (or stdout if empty).
func writeGraph(g *seqgraph.Graph, path string, logger interface{ Infof(string, ...any) }) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := graphio.Write(g, out); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote graph to %s", path)
		printFile(path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
