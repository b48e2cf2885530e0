// Package seqgraph defines the sequence graph: the attributed, undirected
// graph that represents a polymer or biomolecule backbone. Nodes are
// residue positions along the chain, numbered 0..N-1 in chain order, each
// carrying a residue name and a 1-based residue index. Edges connect
// consecutive positions; circular sequences additionally close the chain
// with one edge from the last node back to node 0.
//
// Graphs are built either by [Linear] from an ordered monomer list or
// node-by-node (the JSON import path). The container exposes only the
// operations the parsers and their consumers need: add node, add edge,
// iterate nodes in insertion order.
package seqgraph
