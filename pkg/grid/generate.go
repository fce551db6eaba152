package grid

// Generate produces the complete rule set for a configuration: one rule
// per (tier, property, value) combination, no gaps, no duplicates.
//
// Tiers are enumerated mobile-first: the implicit baseline, then each
// breakpoint in ascending minimum width. Within a tier the property order
// is fixed (spans, offsets, orders, auto, flex), so two runs over an
// identical Config yield identical slices - the basis for reproducible
// stylesheet builds and snapshot tests.
//
// Generation is total and side-effect free for any valid Config; a
// malformed Config is rejected up front and nothing partial is produced.
func Generate(cfg Config) ([]Rule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tiers := make([]string, 0, len(cfg.Breakpoints)+1)
	tiers = append(tiers, "") // mobile baseline
	for _, bp := range cfg.Breakpoints {
		tiers = append(tiers, bp.Name)
	}

	rules := make([]Rule, 0, len(tiers)*tierSize(cfg.Columns))
	for _, tier := range tiers {
		for _, p := range tierProperties(cfg.Columns) {
			rules = append(rules, Rule{
				Breakpoint: tier,
				Property:   p,
				Identifier: Identifier(tier, p),
			})
		}
	}

	return rules, nil
}

// tierProperties enumerates every property value in its declared domain,
// in the fixed generation order.
func tierProperties(columns int) []Property {
	props := make([]Property, 0, tierSize(columns))

	for n := 1; n <= columns; n++ {
		props = append(props, Span(n))
	}
	for n := 0; n < columns; n++ {
		props = append(props, Offset(n))
	}
	props = append(props, Order(First), Order(Last))
	for n := 0; n <= columns; n++ {
		props = append(props, Order(OrderAt(n)))
	}
	props = append(props, Auto(), Flex())

	return props
}

// tierSize is the number of rules generated per tier:
// spans (columns) + offsets (columns) + orders (columns+3) + auto + flex.
func tierSize(columns int) int {
	return 3*columns + 5
}
