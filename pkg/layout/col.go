package layout

import (
	"maps"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/colgrid/colgrid/pkg/errors"
	"github.com/colgrid/colgrid/pkg/grid"
)

// Intent is the caller-supplied description of desired layout for one
// grid cell. It holds no persistent state: construct, resolve, discard.
//
// Zero values mean "unset" for Span and Offset (an offset of zero is a
// no-op by contract). Order uses [grid.OrderValue], whose zero value is
// unset, so an explicit numeric order of 0 remains expressible.
type Intent struct {
	Span   int             // columns to occupy, 1..Columns
	Offset int             // leading empty columns, 0..Columns-1
	Order  grid.OrderValue // visual position: grid.First, grid.Last, or grid.OrderAt(n)
	Auto   bool            // size to content; wins over Flex and Span
	Flex   bool            // fill remaining space; wins over Span

	// At scopes a partial intent to a named breakpoint tier. Override
	// resolution is additive to the baseline: multiple tiers may emit
	// rules for the same property and the cascade picks the active one.
	// Nested At and Proportional fields inside overrides are ignored.
	At map[string]Intent

	// Proportional is the deprecated single-breakpoint stacking flag.
	//
	// Deprecated: scope the span to the small tier instead:
	// At: map[string]Intent{"sm": {Span: n}}. The flag is accepted
	// indefinitely and translated to exactly that (see legacy.go); it
	// will only be removed in a major version.
	Proportional bool
}

// Resolver binds intents to rule identifiers through an immutable
// registry. It carries no mutable state besides the deprecation
// advisory bookkeeping, so a single Resolver may be shared by any number
// of concurrent callers.
type Resolver struct {
	reg        *grid.Registry
	logger     *log.Logger
	advisories advisoryTracker
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for development-time advisories
// (deprecated API usage, conflicting sizing flags).
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a resolver over the given registry.
func NewResolver(reg *grid.Registry, opts ...Option) *Resolver {
	r := &Resolver{
		reg:    reg,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the resolver binds against.
func (r *Resolver) Registry() *grid.Registry {
	return r.reg
}

// Col resolves a column intent to its ordered identifier list: baseline
// rules first, then each breakpoint tier in ascending minimum width.
//
// Out-of-domain values (span 13 on a 12-column grid, an unknown
// breakpoint name in At) are rejected with a descriptive domain error.
// Supplying both Auto and Flex is not an error: Auto wins
// deterministically and the conflict is logged as a debug advisory.
func (r *Resolver) Col(in Intent) ([]string, error) {
	if in.Proportional {
		in = r.translateProportional(in)
	}

	if err := r.validate(in); err != nil {
		return nil, err
	}

	classes := make([]string, 0, 4)
	classes = append(classes, r.tierClasses("", in)...)
	for _, bp := range r.reg.Config().Breakpoints {
		ov, ok := in.At[bp.Name]
		if !ok {
			continue
		}
		classes = append(classes, r.tierClasses(bp.Name, ov)...)
	}
	return classes, nil
}

// tierClasses applies the sizing precedence and the independent offset
// and order resolution for one tier. All lookups hit the registry's
// complete domain (validated upstream), so misses cannot occur.
func (r *Resolver) tierClasses(tier string, in Intent) []string {
	var classes []string

	switch {
	case in.Auto:
		if in.Flex || in.Span != 0 {
			r.logger.Debug("auto set alongside flex/span; auto wins", "tier", tierLabel(tier))
		}
		classes = append(classes, r.identifier(tier, grid.Auto()))
	case in.Flex:
		if in.Span != 0 {
			r.logger.Debug("flex set alongside span; flex wins", "tier", tierLabel(tier))
		}
		classes = append(classes, r.identifier(tier, grid.Flex()))
	case in.Span != 0:
		classes = append(classes, r.identifier(tier, grid.Span(in.Span)))
	}
	// No sizing prop set: emit nothing and leave the cell to the styling
	// surface's default sizing.

	if in.Offset != 0 {
		classes = append(classes, r.identifier(tier, grid.Offset(in.Offset)))
	}
	if !in.Order.IsZero() {
		classes = append(classes, r.identifier(tier, grid.Order(in.Order)))
	}

	return classes
}

func (r *Resolver) identifier(tier string, p grid.Property) string {
	rule, _ := r.reg.Lookup(tier, p)
	return rule.Identifier
}

// validate checks the intent's values against the property domains, for
// the baseline and every breakpoint override.
func (r *Resolver) validate(in Intent) error {
	cfg := r.reg.Config()

	if err := validateTier(in, cfg.Columns); err != nil {
		return err
	}

	for _, name := range slices.Sorted(maps.Keys(in.At)) {
		if _, ok := cfg.Breakpoint(name); !ok {
			return errors.New(errors.ErrCodeInvalidBreakpoint, "unknown breakpoint %q in override map", name)
		}
		if err := validateTier(in.At[name], cfg.Columns); err != nil {
			return err
		}
	}
	return nil
}

func validateTier(in Intent, columns int) error {
	if in.Span != 0 && !in.Auto && !in.Flex {
		if err := grid.Span(in.Span).Validate(columns); err != nil {
			return err
		}
	}
	if in.Offset != 0 {
		if err := grid.Offset(in.Offset).Validate(columns); err != nil {
			return err
		}
	}
	if !in.Order.IsZero() {
		if err := grid.Order(in.Order).Validate(columns); err != nil {
			return err
		}
	}
	return nil
}

func tierLabel(tier string) string {
	if tier == "" {
		return "baseline"
	}
	return tier
}
