package grid

import (
	"github.com/colgrid/colgrid/pkg/errors"
)

// DefaultColumns is the standard grid column count.
const DefaultColumns = 12

// maxColumns bounds the configurable column count. Larger grids generate
// quadratically more rules without any practical layout benefit.
const maxColumns = 24

// reservedNames are tokens that already have a meaning inside generated
// identifiers. A breakpoint with one of these names would make identifiers
// ambiguous (a breakpoint named "offset" would render span rules as
// "col-offset-3", colliding with baseline offset rules).
var reservedNames = map[string]bool{
	"offset": true,
	"order":  true,
	"auto":   true,
	"flex":   true,
	"first":  true,
	"last":   true,
}

// Config is the single source of truth consumed by the rule generator:
// a column count and an ordered, mobile-first breakpoint table.
//
// A Config is created once at initialization and treated as immutable
// afterwards. Construct with [Default] or a struct literal and check
// [Config.Validate] (or build a [Registry], which validates) before use.
type Config struct {
	Columns     int
	Breakpoints []Breakpoint
}

// Default returns the standard configuration: 12 columns with the
// sm=30rem, md=48rem, lg=64rem breakpoint table.
func Default() Config {
	return Config{
		Columns:     DefaultColumns,
		Breakpoints: DefaultBreakpoints(),
	}
}

// Validate checks the configuration invariants. A malformed configuration
// is fatal at initialization: the engine refuses to build a registry
// rather than silently generating an incomplete rule set.
//
// Invariants:
//   - Columns in [1, 24]
//   - at least one breakpoint
//   - breakpoint names unique, lowercase alphanumeric, not reserved
//   - minimum widths strictly increasing and positive (the zero-width
//     mobile baseline is implicit, never a named breakpoint)
func (c Config) Validate() error {
	if c.Columns < 1 || c.Columns > maxColumns {
		return errors.New(errors.ErrCodeInvalidColumns, "column count %d out of range [1, %d]", c.Columns, maxColumns)
	}

	if len(c.Breakpoints) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "breakpoint table cannot be empty")
	}

	seen := make(map[string]bool, len(c.Breakpoints))
	prev := 0.0
	for _, bp := range c.Breakpoints {
		if err := errors.ValidateBreakpointName(bp.Name); err != nil {
			return err
		}
		if reservedNames[bp.Name] {
			return errors.New(errors.ErrCodeInvalidBreakpoint, "breakpoint name %q is a reserved token", bp.Name)
		}
		if seen[bp.Name] {
			return errors.New(errors.ErrCodeInvalidBreakpoint, "duplicate breakpoint name %q", bp.Name)
		}
		seen[bp.Name] = true

		if bp.MinWidth <= prev {
			return errors.New(errors.ErrCodeInvalidBreakpoint,
				"breakpoint %q min width %.4grem must be greater than %.4grem (strictly increasing, above the implicit zero baseline)",
				bp.Name, bp.MinWidth, prev)
		}
		prev = bp.MinWidth
	}

	return nil
}

// SpanFraction returns the width fraction for a cell spanning n of the
// configured columns: n / Columns.
//
// Querying outside [1, Columns] is a programmer error and panics; domain
// validation for caller-supplied values happens in the binding layer,
// before any fraction is computed.
func (c Config) SpanFraction(n int) float64 {
	if n < 1 || n > c.Columns {
		panic("grid: SpanFraction out of range")
	}
	return float64(n) / float64(c.Columns)
}

// Breakpoint returns the breakpoint with the given name.
func (c Config) Breakpoint(name string) (Breakpoint, bool) {
	for _, bp := range c.Breakpoints {
		if bp.Name == name {
			return bp, true
		}
	}
	return Breakpoint{}, false
}
