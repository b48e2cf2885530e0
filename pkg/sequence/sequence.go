package sequence

import (
	"bufio"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/strandkit/strand/pkg/errors"
	"github.com/strandkit/strand/pkg/seqgraph"
)

// FormatParser converts one external sequence serialization into a
// sequence graph.
type FormatParser interface {
	// Parse reads the file at path and returns the sequence graph.
	Parse(path string) (*Result, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the format identifier (e.g., "fasta", "ig").
	Type() string
}

// Result holds a parsed sequence graph together with diagnostics.
//
// Warnings carry the non-fatal anomalies (extra sequences that were
// truncated) as first-class values instead of side-channel prints, so
// callers decide how to surface them.
type Result struct {
	Graph    *seqgraph.Graph
	Type     string   // Parser type that produced this result
	Warnings []string // Non-fatal diagnostics, empty on a clean parse
}

// Parsers returns the default format parser set, in detection order.
func Parsers() []FormatParser {
	return []FormatParser{
		&CSV{},
		&Txt{},
		&IG{},
		&Fasta{},
		&JSONGraph{},
	}
}

// Detect finds a parser that supports the given file path based on its
// name. Returns INVALID_FORMAT if no parser matches.
func Detect(path string) (FormatParser, error) {
	name := filepath.Base(path)
	for _, p := range Parsers() {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported sequence format: %s", name)
}

// ByType returns the parser with the given type identifier.
// Returns INVALID_FORMAT for unknown types.
func ByType(format string) (FormatParser, error) {
	for _, p := range Parsers() {
		if p.Type() == format {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// readLines reads the whole file into a line slice. The file is closed
// before returning on every path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	return lines, nil
}

// splitComment returns the part of line before the first occurrence of
// the comment character. This is the pipeline-shared comment convention:
// everything from the comment character on is dropped.
func splitComment(line string, comment byte) string {
	if i := strings.IndexByte(line, comment); i >= 0 {
		return line[:i]
	}
	return line
}

// hasExt reports whether name ends in one of the given extensions
// (case-insensitive).
func hasExt(name string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
