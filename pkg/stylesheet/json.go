package stylesheet

import (
	"encoding/json"

	"github.com/colgrid/colgrid/pkg/grid"
)

type jsonOutput struct {
	Columns     int               `json:"columns"`
	Breakpoints []grid.Breakpoint `json:"breakpoints"`
	Rules       []jsonRule        `json:"rules"`
}

type jsonRule struct {
	Identifier string `json:"identifier"`
	Breakpoint string `json:"breakpoint,omitempty"`
	Property   string `json:"property"`
	Value      *int   `json:"value,omitempty"`
	Order      string `json:"order,omitempty"`
	CSS        string `json:"css"`
}

// RenderJSON exports the registry as a pretty-printed JSON document:
// the configuration it was built from plus every rule with its resolved
// declaration block. This is the interchange format for tooling that
// consumes the rule set without parsing CSS.
//
// Rules appear in generation order (baseline first, then breakpoints
// ascending), so output is deterministic for a given registry.
func RenderJSON(reg *grid.Registry) ([]byte, error) {
	cfg := reg.Config()
	out := jsonOutput{
		Columns:     cfg.Columns,
		Breakpoints: cfg.Breakpoints,
		Rules:       make([]jsonRule, 0, reg.Len()),
	}

	for _, rule := range reg.All() {
		jr := jsonRule{
			Identifier: rule.Identifier,
			Breakpoint: rule.Breakpoint,
			Property:   rule.Property.Kind.String(),
			CSS:        Declarations(cfg, rule.Property),
		}
		switch rule.Property.Kind {
		case grid.PropertySpan, grid.PropertyOffset:
			v := rule.Property.Value
			jr.Value = &v
		case grid.PropertyOrder:
			jr.Order = rule.Property.Order.String()
		}
		out.Rules = append(out.Rules, jr)
	}

	return json.MarshalIndent(out, "", "  ")
}
