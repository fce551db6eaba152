// Package grid implements the responsive column layout engine core:
// breakpoint tables, grid configuration, layout properties, and the
// generated rule registry.
//
// # Architecture
//
// The engine turns an immutable [Config] (column count + breakpoint table)
// into the complete set of named layout rules:
//
//	Config ──► Generate ──► []Rule ──► Registry
//
// Rules are generated eagerly, exactly once, and never mutated. A rule's
// identifier is a pure function of (breakpoint, property), so regenerating
// from an identical Config yields byte-identical identifiers. The Registry
// is safe for unlimited concurrent readers without locking.
//
// # Naming Contract
//
// Identifiers follow col[-{breakpoint}]-{value} and are the load-bearing
// contract with any external stylesheet:
//
//	col-6              span 6, mobile baseline
//	col-md-6           span 6 at-or-above md
//	col-lg-offset-3    offset 3 at-or-above lg
//	col-order-first    order "first", mobile baseline
//	col-auto           shrink-to-content, mobile baseline
//	col-flex           fill remaining space, mobile baseline
//
// Renaming these strings is a breaking change.
//
// # Mobile-First Cascade
//
// A rule scoped to a breakpoint applies at all viewports at or above that
// breakpoint's minimum width and is superseded only by a rule for the same
// property at a larger active breakpoint. The engine relies on the styling
// surface's native cascade for this; it only guarantees that exactly one
// rule exists per (tier, property, value) and that identifiers are stable.
//
// # Usage
//
//	cfg := grid.Default()                 // 12 columns, sm/md/lg
//	reg, err := grid.NewRegistry(cfg)
//	if err != nil {
//	    // malformed configuration: fatal at initialization
//	}
//	rule, ok := reg.Lookup("md", grid.Span(6))
//	fmt.Println(rule.Identifier) // col-md-6
package grid
