package grid

import "strings"

// baseToken prefixes every generated identifier. Together with the
// breakpoint name and value token it forms the naming contract
// col[-{breakpoint}]-{value}.
const baseToken = "col"

// Rule is one generated, named unit of layout behavior: a property value
// scoped to a breakpoint tier. Breakpoint "" is the mobile baseline, which
// applies below the smallest named breakpoint and is overridden at or
// above it (mobile-first cascade).
//
// Rules are generated once from a validated [Config] and never mutated.
type Rule struct {
	Breakpoint string   // breakpoint name; "" for the mobile baseline
	Property   Property // the property value this rule applies
	Identifier string   // stable identifier, e.g. "col-md-6"
}

// Identifier derives the rule identifier for a property scoped to a
// breakpoint tier. It is a pure function: same inputs always produce the
// same string. The baseline tier omits the breakpoint segment, so the
// baseline rule and the smallest-tier rule stay textually distinct.
func Identifier(breakpoint string, p Property) string {
	parts := make([]string, 0, 3)
	parts = append(parts, baseToken)
	if breakpoint != "" {
		parts = append(parts, breakpoint)
	}
	parts = append(parts, p.token())
	return strings.Join(parts, "-")
}
