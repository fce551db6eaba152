// Package layout is the component binding layer: it turns structured
// layout intent (what a caller wants for a row or a column) into the
// ordered rule identifier lists the styling surface consumes.
//
// # Column Resolution
//
// A [Intent] resolves with fixed precedence per tier:
//
//  1. Auto wins: span and flex are ignored entirely, not merely
//     overridden - they never appear in the emitted set.
//  2. Otherwise Flex wins over Span.
//  3. Otherwise Span, if set, emits its rule.
//  4. Otherwise no sizing rule is emitted. The cell's size is then the
//     styling surface's default (equal-share or content-based, depending
//     on the surface) - an intentional non-guarantee of this engine.
//
// Offset and order resolve independently of sizing. An offset of zero is
// semantically identical to no offset and emits nothing.
//
// Per-breakpoint overrides in [Intent.At] repeat the same resolution
// scoped to that tier, additively: baseline classes come first, then each
// breakpoint ascending, and the mobile-first cascade picks the winner at
// render time.
//
//	res := layout.NewResolver(reg)
//	classes, _ := res.Col(layout.Intent{
//	    Span: 12,
//	    At: map[string]layout.Intent{
//	        "md": {Span: 6},
//	        "lg": {Span: 4},
//	    },
//	})
//	// [col-12 col-md-6 col-lg-4]
//
// # Intents Are Ephemeral
//
// Intents are constructed per use site, resolved immediately, and
// discarded. Resolution is a pure function of the intent plus the
// immutable registry, so concurrent resolutions need no coordination.
//
// # Deprecated Proportional Mode
//
// The legacy Proportional flag (single-breakpoint proportional stacking)
// is kept working by translating it into the same registry lookups the
// breakpoint-scoped API produces; see legacy.go. Its use is reported once
// per call site as a development-mode advisory, never an error.
package layout
