package layout

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/colgrid/colgrid/pkg/grid"
)

func TestProportionalShimEquivalence(t *testing.T) {
	// The shim must produce the identical identifier set as the
	// breakpoint-scoped replacement API - it is a translation layer over
	// the same registry, not a parallel rule path.
	res := newTestResolver(t)

	legacy, err := res.Col(Intent{Span: 6, Proportional: true})
	if err != nil {
		t.Fatalf("Col(proportional) error: %v", err)
	}
	modern, err := res.Col(Intent{At: map[string]Intent{
		LegacyBreakpoint: {Span: 6},
	}})
	if err != nil {
		t.Fatalf("Col(At) error: %v", err)
	}

	if !reflect.DeepEqual(legacy, modern) {
		t.Errorf("shim = %v, replacement = %v; identifier sets must match", legacy, modern)
	}
	if !reflect.DeepEqual(legacy, []string{"col-sm-6"}) {
		t.Errorf("shim = %v, want [col-sm-6]", legacy)
	}
}

func TestProportionalPreservesOtherProperties(t *testing.T) {
	res := newTestResolver(t)

	got, err := res.Col(Intent{Span: 6, Offset: 2, Order: grid.First, Proportional: true})
	if err != nil {
		t.Fatalf("Col() error: %v", err)
	}
	want := []string{"col-offset-2", "col-order-first", "col-sm-6"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Col() = %v, want %v", got, want)
	}
}

func TestProportionalDoesNotClobberExplicitOverride(t *testing.T) {
	// An explicit sm override wins over the shim's translation.
	res := newTestResolver(t)

	got, err := res.Col(Intent{Span: 6, Proportional: true, At: map[string]Intent{
		"sm": {Span: 10},
	}})
	if err != nil {
		t.Fatalf("Col() error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"col-sm-10"}) {
		t.Errorf("Col() = %v, want [col-sm-10]", got)
	}
}

func TestProportionalWithoutSpan(t *testing.T) {
	res := newTestResolver(t)

	got, err := res.Col(Intent{Proportional: true})
	if err != nil {
		t.Fatalf("Col() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Col() = %v, want no classes", got)
	}
}

func TestProportionalAdvisoryOncePerCallsite(t *testing.T) {
	t.Setenv("COLGRID_ENV", "development")

	var buf bytes.Buffer
	reg, err := grid.NewRegistry(grid.Default())
	if err != nil {
		t.Fatal(err)
	}
	res := NewResolver(reg, WithLogger(log.New(&buf)))

	for i := 0; i < 5; i++ {
		if _, err := res.Col(Intent{Span: 6, Proportional: true}); err != nil {
			t.Fatalf("Col() error: %v", err)
		}
	}

	if got := strings.Count(buf.String(), "deprecated"); got != 1 {
		t.Errorf("advisory logged %d times, want exactly 1 per call site\nlog: %s", got, buf.String())
	}
}

func TestProportionalAdvisoryGatedInProduction(t *testing.T) {
	t.Setenv("COLGRID_ENV", "production")

	var buf bytes.Buffer
	reg, err := grid.NewRegistry(grid.Default())
	if err != nil {
		t.Fatal(err)
	}
	res := NewResolver(reg, WithLogger(log.New(&buf)))

	got, err := res.Col(Intent{Span: 6, Proportional: true})
	if err != nil {
		t.Fatalf("Col() error: %v", err)
	}
	// Behavior is unchanged; only the advisory is suppressed.
	if !reflect.DeepEqual(got, []string{"col-sm-6"}) {
		t.Errorf("Col() = %v, want [col-sm-6]", got)
	}
	if buf.Len() != 0 {
		t.Errorf("advisory emitted in production mode: %s", buf.String())
	}
}
