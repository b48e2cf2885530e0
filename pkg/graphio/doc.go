// Package graphio reads and writes sequence graphs in the node-link JSON
// convention: a "nodes" array of objects carrying an integer "id" plus
// arbitrary attributes, and an "edges" (or networkx-style "links") array
// of source/target pairs with their own attributes.
//
// Reading normalizes node order: nodes are inserted in ascending numeric
// id order regardless of their order in the document, so consumers that
// traverse nodes in insertion order always see an ascending chain.
// Writing sorts nodes by id for deterministic output.
package graphio
