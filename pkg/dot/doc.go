// Package dot exports graphs to Graphviz DOT format and renders them to
// SVG or PNG.
//
// # Positioned output
//
// Layout algorithms in [github.com/flowgraph/flowlayout/pkg/layout] write
// coordinates directly onto nodes. With [Options.Positioned] set, ToDOT pins
// every node at its computed position so Graphviz draws the layout as-is
// instead of recomputing one; positioned graphs are rendered with the neato
// engine. Without it, the output is a plain digraph and Graphviz's own dot
// engine decides placement.
//
// # Coordinates
//
// Node positions use a top-left origin with y growing downward, while
// Graphviz uses y growing upward. ToDOT negates y during export so rendered
// images match the computed layout.
package dot
