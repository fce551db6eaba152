package grid

import (
	"testing"
)

func TestGenerateIdentifierContract(t *testing.T) {
	// The exact strings are the load-bearing contract with external
	// stylesheets; renaming any of them is a breaking change.
	tests := []struct {
		breakpoint string
		property   Property
		want       string
	}{
		{"", Span(6), "col-6"},
		{"md", Span(6), "col-md-6"},
		{"sm", Span(12), "col-sm-12"},
		{"", Offset(3), "col-offset-3"},
		{"lg", Offset(3), "col-lg-offset-3"},
		{"", Offset(0), "col-offset-0"},
		{"", Order(First), "col-order-first"},
		{"", Order(Last), "col-order-last"},
		{"md", Order(OrderAt(0)), "col-md-order-0"},
		{"lg", Order(OrderAt(12)), "col-lg-order-12"},
		{"", Auto(), "col-auto"},
		{"sm", Auto(), "col-sm-auto"},
		{"", Flex(), "col-flex"},
		{"lg", Flex(), "col-lg-flex"},
	}

	for _, tt := range tests {
		if got := Identifier(tt.breakpoint, tt.property); got != tt.want {
			t.Errorf("Identifier(%q, %v) = %q, want %q", tt.breakpoint, tt.property, got, tt.want)
		}
	}
}

func TestGenerateCompleteness(t *testing.T) {
	cfg := Default()
	rules, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// 4 tiers (baseline + sm/md/lg), each with 12 spans, 12 offsets,
	// 15 orders (first, last, 0..12), auto, and flex.
	wantPerTier := 12 + 12 + 15 + 2
	want := 4 * wantPerTier
	if len(rules) != want {
		t.Fatalf("Generate() produced %d rules, want %d", len(rules), want)
	}

	// No duplicate identifiers and no duplicate keys.
	ids := make(map[string]bool, len(rules))
	keys := make(map[ruleKey]bool, len(rules))
	for _, r := range rules {
		if ids[r.Identifier] {
			t.Errorf("duplicate identifier %q", r.Identifier)
		}
		ids[r.Identifier] = true

		k := ruleKey{r.Breakpoint, r.Property}
		if keys[k] {
			t.Errorf("duplicate rule for %q/%v", r.Breakpoint, r.Property)
		}
		keys[k] = true
	}
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := Default()

	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("rule counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("rule %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateTierOrdering(t *testing.T) {
	rules, err := Generate(Default())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// Tiers must appear mobile-first: baseline, then sm, md, lg. The
	// styling surface's cascade depends on this source order.
	wantTiers := []string{"", "sm", "md", "lg"}
	tierIdx := 0
	for _, r := range rules {
		for r.Breakpoint != wantTiers[tierIdx] {
			tierIdx++
			if tierIdx >= len(wantTiers) {
				t.Fatalf("rule %q appears after its tier %q ended", r.Identifier, r.Breakpoint)
			}
		}
	}
}

func TestGenerateRejectsMalformedConfig(t *testing.T) {
	_, err := Generate(Config{Columns: 12})
	if err == nil {
		t.Fatal("Generate() with empty breakpoints should fail")
	}
}

func TestPropertyValidate(t *testing.T) {
	tests := []struct {
		name     string
		property Property
		wantErr  bool
	}{
		{"SpanLow", Span(1), false},
		{"SpanHigh", Span(12), false},
		{"SpanZero", Span(0), true},
		{"SpanOver", Span(13), true},
		{"OffsetZero", Offset(0), false},
		{"OffsetHigh", Offset(11), false},
		{"OffsetNegative", Offset(-1), true},
		{"OffsetOver", Offset(12), true},
		{"OrderFirst", Order(First), false},
		{"OrderLast", Order(Last), false},
		{"OrderZero", Order(OrderAt(0)), false},
		{"OrderHigh", Order(OrderAt(12)), false},
		{"OrderOver", Order(OrderAt(13)), true},
		{"OrderNegative", Order(OrderAt(-1)), true},
		{"OrderUnset", Order(OrderValue{}), true},
		{"Auto", Auto(), false},
		{"Flex", Flex(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.property.Validate(12)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    OrderValue
		wantErr bool
	}{
		{"first", First, false},
		{"last", Last, false},
		{"0", OrderAt(0), false},
		{"7", OrderAt(7), false},
		{"banana", OrderValue{}, true},
		{"", OrderValue{}, true},
	}

	for _, tt := range tests {
		got, err := ParseOrder(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOrder(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseOrder(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
