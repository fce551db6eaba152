// Package stylesheet emits the generated rule registry as consumable
// artifacts: a CSS stylesheet and a machine-readable JSON rule dump.
//
// Emission is deterministic: the same registry renders to byte-identical
// output, making stylesheet builds reproducible and snapshot-testable.
//
// The CSS encodes the mobile-first cascade structurally - baseline rules
// first, then one @media (min-width) block per breakpoint in ascending
// order - so the styling surface's native cascade resolves which rule
// wins at any viewport width. Nothing here re-computes the cascade.
//
//	css := stylesheet.RenderCSS(reg)
//	data, err := stylesheet.RenderJSON(reg)
package stylesheet
