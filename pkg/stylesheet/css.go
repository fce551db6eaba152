package stylesheet

import (
	"bytes"
	"strconv"

	"github.com/colgrid/colgrid/pkg/grid"
)

// CSSOption configures CSS rendering via [RenderCSS].
type CSSOption func(*cssRenderer)

type cssRenderer struct {
	header       string
	headerSet    bool
	minified     bool
	rowUtilities bool
}

// WithCSSHeader replaces the default leading comment. An empty string
// suppresses the header entirely.
func WithCSSHeader(s string) CSSOption {
	return func(r *cssRenderer) { r.header = s; r.headerSet = true }
}

// WithCSSMinified strips structural whitespace from the output. Selector
// and declaration order are unchanged, so minified output stays
// deterministic too.
func WithCSSMinified() CSSOption { return func(r *cssRenderer) { r.minified = true } }

// WithoutRowUtilities omits the fixed row utility classes, emitting only
// the generated column rules.
func WithoutRowUtilities() CSSOption { return func(r *cssRenderer) { r.rowUtilities = false } }

// declaration is a single CSS property: value pair.
type declaration struct {
	property string
	value    string
}

// rowUtilityRules is the fixed vocabulary backing the row resolver's
// class names. These carry no breakpoint or value domain, so they are
// authored here rather than generated.
var rowUtilityRules = []struct {
	selector string
	decls    []declaration
}{
	{".row", []declaration{{"display", "flex"}, {"flex-wrap", "wrap"}, {"gap", "var(--row-gap, 1rem)"}}},
	{".row-nowrap", []declaration{{"flex-wrap", "nowrap"}}},
	{".row-wrap-reverse", []declaration{{"flex-wrap", "wrap-reverse"}}},
	{".row-gap-sm", []declaration{{"--row-gap", "0.5rem"}}},
	{".row-gap-md", []declaration{{"--row-gap", "1rem"}}},
	{".row-gap-lg", []declaration{{"--row-gap", "2rem"}}},
	{".row-justify-start", []declaration{{"justify-content", "flex-start"}}},
	{".row-justify-center", []declaration{{"justify-content", "center"}}},
	{".row-justify-end", []declaration{{"justify-content", "flex-end"}}},
	{".row-justify-between", []declaration{{"justify-content", "space-between"}}},
	{".row-justify-around", []declaration{{"justify-content", "space-around"}}},
	{".row-justify-evenly", []declaration{{"justify-content", "space-evenly"}}},
	{".row-align-start", []declaration{{"align-items", "flex-start"}}},
	{".row-align-center", []declaration{{"align-items", "center"}}},
	{".row-align-end", []declaration{{"align-items", "flex-end"}}},
	{".row-align-stretch", []declaration{{"align-items", "stretch"}}},
}

// RenderCSS renders the registry as a stylesheet: row utilities, then
// baseline column rules, then one @media (min-width) block per breakpoint
// in ascending order. Output is deterministic for a given registry and
// option set.
func RenderCSS(reg *grid.Registry, opts ...CSSOption) []byte {
	r := cssRenderer{rowUtilities: true}
	for _, opt := range opts {
		opt(&r)
	}

	cfg := reg.Config()
	if !r.headerSet {
		r.header = "colgrid: " + strconv.Itoa(cfg.Columns) + " columns, " + strconv.Itoa(reg.Len()) + " rules"
	}

	w := cssWriter{minified: r.minified}

	if r.header != "" {
		w.comment(r.header)
	}
	if r.rowUtilities {
		for _, u := range rowUtilityRules {
			w.rule(u.selector, u.decls)
		}
	}

	byTier := rulesByTier(reg)
	for _, rule := range byTier[""] {
		w.rule("."+rule.Identifier, propertyDeclarations(cfg, rule.Property))
	}
	for _, bp := range cfg.Breakpoints {
		w.openMedia(bp.MinWidth)
		for _, rule := range byTier[bp.Name] {
			w.rule("."+rule.Identifier, propertyDeclarations(cfg, rule.Property))
		}
		w.closeMedia()
	}

	return w.buf.Bytes()
}

// Declarations returns the declaration block for a property as a single
// "prop: value; prop: value" string, as used in rule listings.
func Declarations(cfg grid.Config, p grid.Property) string {
	decls := propertyDeclarations(cfg, p)
	var buf bytes.Buffer
	for i, d := range decls {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(d.property)
		buf.WriteString(": ")
		buf.WriteString(d.value)
	}
	return buf.String()
}

// propertyDeclarations maps a property value to its CSS declarations for
// a grid with the given configuration.
func propertyDeclarations(cfg grid.Config, p grid.Property) []declaration {
	switch p.Kind {
	case grid.PropertySpan:
		return []declaration{
			{"flex", "0 0 auto"},
			{"width", formatPercent(cfg.SpanFraction(p.Value))},
		}
	case grid.PropertyOffset:
		if p.Value == 0 {
			return []declaration{{"margin-inline-start", "0"}}
		}
		return []declaration{
			{"margin-inline-start", formatPercent(float64(p.Value) / float64(cfg.Columns))},
		}
	case grid.PropertyOrder:
		return []declaration{{"order", strconv.Itoa(p.Order.Position(cfg.Columns))}}
	case grid.PropertyAuto:
		return []declaration{
			{"flex", "0 0 auto"},
			{"width", "auto"},
		}
	case grid.PropertyFlex:
		return []declaration{
			{"flex", "1 1 0%"},
			{"width", "auto"},
		}
	}
	return nil
}

// rulesByTier groups the registry's rules by tier, preserving generation
// order within each tier.
func rulesByTier(reg *grid.Registry) map[string][]grid.Rule {
	byTier := make(map[string][]grid.Rule, len(reg.Tiers()))
	for _, rule := range reg.All() {
		byTier[rule.Breakpoint] = append(byTier[rule.Breakpoint], rule)
	}
	return byTier
}

// formatPercent renders a width fraction as a CSS percentage with at
// most six decimal places and no trailing zeros, so 6/12 prints as 50%
// and 1/12 as 8.333333%.
func formatPercent(frac float64) string {
	s := strconv.FormatFloat(frac*100, 'f', 6, 64)
	s = trimTrailingZeros(s)
	return s + "%"
}

func trimTrailingZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}

// cssWriter emits rules in either pretty or minified form. Indentation
// tracks media block nesting.
type cssWriter struct {
	buf      bytes.Buffer
	minified bool
	depth    int
}

func (w *cssWriter) comment(s string) {
	if w.minified {
		return
	}
	w.buf.WriteString("/* " + s + " */\n\n")
}

func (w *cssWriter) indent() {
	for i := 0; i < w.depth; i++ {
		w.buf.WriteString("  ")
	}
}

func (w *cssWriter) rule(selector string, decls []declaration) {
	if w.minified {
		w.buf.WriteString(selector)
		w.buf.WriteByte('{')
		for i, d := range decls {
			if i > 0 {
				w.buf.WriteByte(';')
			}
			w.buf.WriteString(d.property)
			w.buf.WriteByte(':')
			w.buf.WriteString(d.value)
		}
		w.buf.WriteByte('}')
		return
	}

	w.indent()
	w.buf.WriteString(selector)
	w.buf.WriteString(" {\n")
	for _, d := range decls {
		w.indent()
		w.buf.WriteString("  ")
		w.buf.WriteString(d.property)
		w.buf.WriteString(": ")
		w.buf.WriteString(d.value)
		w.buf.WriteString(";\n")
	}
	w.indent()
	w.buf.WriteString("}\n")
	if w.depth == 0 {
		w.buf.WriteByte('\n')
	}
}

func (w *cssWriter) openMedia(minWidth float64) {
	rem := strconv.FormatFloat(minWidth, 'f', -1, 64)
	if w.minified {
		w.buf.WriteString("@media (min-width:" + rem + "rem){")
		return
	}
	w.buf.WriteString("@media (min-width: " + rem + "rem) {\n")
	w.depth++
}

func (w *cssWriter) closeMedia() {
	if w.minified {
		w.buf.WriteByte('}')
		return
	}
	w.depth--
	w.buf.WriteString("}\n\n")
}
