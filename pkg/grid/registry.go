package grid

import "slices"

// ruleKey identifies a rule by its (breakpoint, property) coordinates.
// Property is comparable, so the key doubles as the completeness domain.
type ruleKey struct {
	breakpoint string
	property   Property
}

// Registry is the read-only lookup table over the generated rule set.
// It is built once from [Generate] output and thereafter immutable, so it
// may be shared by unlimited concurrent readers without locking.
//
// For every value inside the declared domains, lookup never misses - a
// build-time completeness invariant verified by exhaustive tests, not by
// runtime guards.
type Registry struct {
	cfg   Config
	rules []Rule
	byKey map[ruleKey]Rule
	byID  map[string]Rule
}

// NewRegistry validates cfg, generates the complete rule set, and indexes
// it. A malformed configuration fails here, before any rule exists.
func NewRegistry(cfg Config) (*Registry, error) {
	rules, err := Generate(cfg)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		cfg:   cfg,
		rules: rules,
		byKey: make(map[ruleKey]Rule, len(rules)),
		byID:  make(map[string]Rule, len(rules)),
	}
	for _, rule := range rules {
		r.byKey[ruleKey{rule.Breakpoint, rule.Property}] = rule
		r.byID[rule.Identifier] = rule
	}

	return r, nil
}

// Config returns the configuration the registry was built from.
func (r *Registry) Config() Config {
	return r.cfg
}

// Len returns the number of generated rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// All returns every rule in generation order (baseline first, then
// breakpoints ascending). The returned slice is a copy.
func (r *Registry) All() []Rule {
	return slices.Clone(r.rules)
}

// Lookup returns the rule for a property at a breakpoint tier.
// Breakpoint "" selects the mobile baseline. The boolean is false only
// for values outside the declared domains or unknown breakpoint names.
func (r *Registry) Lookup(breakpoint string, p Property) (Rule, bool) {
	rule, ok := r.byKey[ruleKey{breakpoint, p}]
	return rule, ok
}

// Find resolves an identifier string back to its rule. This is the
// reverse index used by tooling that starts from emitted class lists.
func (r *Registry) Find(identifier string) (Rule, bool) {
	rule, ok := r.byID[identifier]
	return rule, ok
}

// Tiers returns the tier names in cascade order: "" (baseline), then
// breakpoint names by ascending minimum width.
func (r *Registry) Tiers() []string {
	tiers := make([]string, 0, len(r.cfg.Breakpoints)+1)
	tiers = append(tiers, "")
	for _, bp := range r.cfg.Breakpoints {
		tiers = append(tiers, bp.Name)
	}
	return tiers
}
