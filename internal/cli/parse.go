package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colgrid/colgrid/pkg/grid"
	"github.com/colgrid/colgrid/pkg/layout"
)

// parseAt parses one breakpoint override in the form
// "bp:key=value[,key=value...]", e.g. "md:span=6,offset=2" or
// "lg:auto". Boolean properties (auto, flex) take no value.
func parseAt(s string) (string, layout.Intent, error) {
	name, props, ok := strings.Cut(s, ":")
	if !ok || name == "" {
		return "", layout.Intent{}, fmt.Errorf("override %q must have the form bp:key=value[,...]", s)
	}

	var in layout.Intent
	for _, prop := range strings.Split(props, ",") {
		key, value, hasValue := strings.Cut(prop, "=")
		switch key {
		case "span", "offset":
			if !hasValue {
				return "", layout.Intent{}, fmt.Errorf("override %q: %s needs a value", s, key)
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return "", layout.Intent{}, fmt.Errorf("override %q: %s must be a number: %q", s, key, value)
			}
			if key == "span" {
				in.Span = n
			} else {
				in.Offset = n
			}
		case "order":
			if !hasValue {
				return "", layout.Intent{}, fmt.Errorf("override %q: order needs a value", s)
			}
			order, err := grid.ParseOrder(value)
			if err != nil {
				return "", layout.Intent{}, err
			}
			in.Order = order
		case "auto":
			in.Auto = true
		case "flex":
			in.Flex = true
		default:
			return "", layout.Intent{}, fmt.Errorf("override %q: unknown property %q", s, key)
		}
	}
	return name, in, nil
}

// intentFlags holds the raw flag values of an intent before parsing.
type intentFlags struct {
	span         int
	offset       int
	order        string
	auto         bool
	flex         bool
	proportional bool
	at           []string
}

// intent assembles a layout intent from the parsed flags.
func (f intentFlags) intent() (layout.Intent, error) {
	in := layout.Intent{
		Span:         f.span,
		Offset:       f.offset,
		Auto:         f.auto,
		Flex:         f.flex,
		Proportional: f.proportional,
	}
	if f.order != "" {
		order, err := grid.ParseOrder(f.order)
		if err != nil {
			return layout.Intent{}, err
		}
		in.Order = order
	}
	for _, override := range f.at {
		name, sub, err := parseAt(override)
		if err != nil {
			return layout.Intent{}, err
		}
		if in.At == nil {
			in.At = make(map[string]layout.Intent, len(f.at))
		}
		in.At[name] = sub
	}
	return in, nil
}

// register adds the shared intent flags to a command's flag set.
func (f *intentFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.span, "span", 0, "columns to span (1..columns)")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "leading empty columns (0..columns-1)")
	cmd.Flags().StringVar(&f.order, "order", "", `visual order: "first", "last", or a number`)
	cmd.Flags().BoolVar(&f.auto, "auto", false, "size to content")
	cmd.Flags().BoolVar(&f.flex, "flex", false, "grow to fill remaining space")
	cmd.Flags().BoolVar(&f.proportional, "proportional", false, "legacy proportional sizing (deprecated)")
	cmd.Flags().StringArrayVar(&f.at, "at", nil, `breakpoint override, e.g. "md:span=6,offset=2" (repeatable)`)
}
