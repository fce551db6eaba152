package cascade

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/colgrid/colgrid/pkg/errors"
	"github.com/colgrid/colgrid/pkg/grid"
	"github.com/colgrid/colgrid/pkg/stylesheet"
)

// Options configures cascade diagram rendering.
type Options struct {
	// Detailed includes the CSS declaration block in node labels.
	// When false, only the rule identifier is shown.
	Detailed bool
}

// concern groups property kinds that compete for the same declaration:
// span, auto, and flex all set the sizing of a cell, so across tiers they
// form a single supersession chain.
func concern(k grid.PropertyKind) string {
	switch k {
	case grid.PropertySpan, grid.PropertyAuto, grid.PropertyFlex:
		return "sizing"
	case grid.PropertyOffset:
		return "offset"
	case grid.PropertyOrder:
		return "order"
	}
	return "unknown"
}

// ToDOT converts a resolved class list to Graphviz DOT format. Classes
// are grouped by concern and chained in tier order; each edge is labeled
// with the minimum width at which the later rule takes over. Identifiers
// not present in the registry are rejected.
//
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(reg *grid.Registry, classes []string, opts Options) (string, error) {
	chains, err := buildChains(reg, classes)
	if err != nil {
		return "", err
	}

	cfg := reg.Config()

	var buf bytes.Buffer
	buf.WriteString("digraph cascade {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("\n")

	for i, chain := range chains {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", chain.concern)
		buf.WriteString("    style=dashed;\n")

		for j, rule := range chain.rules {
			label := fmtLabel(cfg, rule, opts.Detailed)
			attrs := []string{fmt.Sprintf("label=%q", label)}
			if j == len(chain.rules)-1 {
				// The widest tier wins everywhere at or above its
				// minimum width.
				attrs = append(attrs, "fillcolor=lightgrey")
			}
			fmt.Fprintf(&buf, "    %q [%s];\n", rule.Identifier, strings.Join(attrs, ", "))
		}

		for j := 1; j < len(chain.rules); j++ {
			from, to := chain.rules[j-1], chain.rules[j]
			bp, _ := cfg.Breakpoint(to.Breakpoint)
			fmt.Fprintf(&buf, "    %q -> %q [label=%q];\n",
				from.Identifier, to.Identifier, edgeLabel(bp))
		}

		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// chain is one concern's rules in tier cascade order.
type chain struct {
	concern string
	rules   []grid.Rule
}

func buildChains(reg *grid.Registry, classes []string) ([]chain, error) {
	byConcern := make(map[string]map[string]grid.Rule)
	for _, class := range classes {
		rule, ok := reg.Find(class)
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "unknown rule identifier %q", class)
		}
		c := concern(rule.Property.Kind)
		if byConcern[c] == nil {
			byConcern[c] = make(map[string]grid.Rule)
		}
		if prev, dup := byConcern[c][rule.Breakpoint]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"%q and %q both set %s at the same tier", prev.Identifier, rule.Identifier, c)
		}
		byConcern[c][rule.Breakpoint] = rule
	}

	// Fixed concern order keeps output deterministic regardless of the
	// input class order.
	chains := make([]chain, 0, len(byConcern))
	for _, c := range []string{"sizing", "offset", "order"} {
		tiers, ok := byConcern[c]
		if !ok {
			continue
		}
		ch := chain{concern: c}
		for _, tier := range reg.Tiers() {
			if rule, ok := tiers[tier]; ok {
				ch.rules = append(ch.rules, rule)
			}
		}
		chains = append(chains, ch)
	}
	return chains, nil
}

func fmtLabel(cfg grid.Config, rule grid.Rule, detailed bool) string {
	if !detailed {
		return rule.Identifier
	}
	return rule.Identifier + "\n" + stylesheet.Declarations(cfg, rule.Property)
}

func edgeLabel(bp grid.Breakpoint) string {
	return ">= " + strconv.FormatFloat(bp.MinWidth, 'f', -1, 64) + "rem"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return buf.Bytes(), nil
}
