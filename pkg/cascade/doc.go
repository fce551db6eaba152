// Package cascade visualizes how a resolved class list plays out across
// viewport widths.
//
// # Overview
//
// A resolved column class list encodes a mobile-first cascade: the
// baseline rule applies first and each breakpoint rule supersedes it at
// its minimum width. This package renders that supersession chain as a
// Graphviz diagram, one chain per property concern, so the effective
// rule at any width can be read off the graph.
//
// # Usage
//
// Convert a class list to DOT format, then render to SVG:
//
//	dot, err := cascade.ToDOT(reg, []string{"col-12", "col-md-6", "col-lg-4"}, cascade.Options{})
//	svg, err := cascade.RenderSVG(dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package cascade
