// Package render draws sequence graphs as node-link diagrams.
//
// The graph is first converted to Graphviz DOT ([ToDOT]), then rendered
// to SVG with the embedded Graphviz engine. PNG and PDF output go through
// SVG conversion with rsvg-convert, which must be installed separately.
package render
