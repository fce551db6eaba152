// Package pkg provides the core libraries for the colgrid layout engine.
//
// # Overview
//
// colgrid resolves declarative layout intents into column class lists and
// renders the CSS that backs them. The pkg directory is organized into
// three main areas:
//
//  1. Domain logic (grid rules, intent resolution, stylesheet emission)
//  2. Infrastructure (caching, preset storage)
//  3. Shared utilities (errors, build metadata)
//
// # Architecture
//
// The typical data flow through colgrid:
//
//	grid configuration (columns + breakpoints)
//	         ↓
//	    [grid] package (rule registry)
//	         ↓
//	    [layout] package (intent → class list)
//	         ↓
//	    [stylesheet] / [cascade] packages (CSS, JSON, DOT/SVG output)
//
// # Quick Start
//
// Resolve an intent and render the stylesheet:
//
//	import (
//	    "github.com/colgrid/colgrid/pkg/grid"
//	    "github.com/colgrid/colgrid/pkg/layout"
//	    "github.com/colgrid/colgrid/pkg/stylesheet"
//	)
//
//	// 1. Build the rule registry
//	cfg := grid.Default()
//	reg, _ := grid.NewRegistry(cfg)
//
//	// 2. Resolve an intent to classes
//	res := layout.NewResolver(reg)
//	classes, _ := res.Col(layout.Intent{Span: 6})
//
//	// 3. Render the CSS
//	css := stylesheet.RenderCSS(reg)
//
// # Main Packages
//
// ## Domain Logic
//
// [grid] - Grid configuration, the naming contract, and the rule registry.
// A configuration is columns plus an ordered set of breakpoints; the
// registry derives every addressable rule from it deterministically.
//
// [layout] - Intent resolution. Turns a declarative description of a cell
// (span, offset, order, auto, flex, per-breakpoint overrides) into the
// minimal class list, and row descriptions into row utility classes.
//
// [stylesheet] - CSS and JSON emission. Mobile-first output with one media
// block per breakpoint, optional minification and row utilities.
//
// [cascade] - Supersession diagrams. Renders how a class list's properties
// cascade across breakpoints as Graphviz DOT or SVG.
//
// ## Infrastructure
//
// [cache] - Artifact cache with null, file, and Redis backends, plus the
// domain key derivation shared by the CLI and the server.
//
// [preset] - Named grid configurations with memory and MongoDB backends.
//
// ## Shared
//
// [errors] - Structured error codes and validation helpers used across the
// module and mapped to HTTP statuses by the server.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/grid/...      # Specific package
//	go test -run Example        # Examples only
//
// [grid]: https://pkg.go.dev/github.com/colgrid/colgrid/pkg/grid
// [layout]: https://pkg.go.dev/github.com/colgrid/colgrid/pkg/layout
// [stylesheet]: https://pkg.go.dev/github.com/colgrid/colgrid/pkg/stylesheet
// [cascade]: https://pkg.go.dev/github.com/colgrid/colgrid/pkg/cascade
// [cache]: https://pkg.go.dev/github.com/colgrid/colgrid/pkg/cache
// [preset]: https://pkg.go.dev/github.com/colgrid/colgrid/pkg/preset
// [errors]: https://pkg.go.dev/github.com/colgrid/colgrid/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/colgrid/colgrid/pkg/buildinfo
package pkg
