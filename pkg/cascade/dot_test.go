package cascade

import (
	"strings"
	"testing"

	"github.com/colgrid/colgrid/pkg/errors"
	"github.com/colgrid/colgrid/pkg/grid"
)

func newTestRegistry(t *testing.T) *grid.Registry {
	t.Helper()
	reg, err := grid.NewRegistry(grid.Default())
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	return reg
}

func TestToDOTChainsTiersInCascadeOrder(t *testing.T) {
	reg := newTestRegistry(t)

	dot, err := ToDOT(reg, []string{"col-lg-4", "col-12", "col-md-6"}, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}

	for _, want := range []string{
		`"col-12" -> "col-md-6" [label=">= 48rem"];`,
		`"col-md-6" -> "col-lg-4" [label=">= 64rem"];`,
		`label="sizing"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"col-lg-4" -> `) {
		t.Error("widest tier must be a chain sink, not a source")
	}
}

func TestToDOTGroupsByConcern(t *testing.T) {
	reg := newTestRegistry(t)

	dot, err := ToDOT(reg, []string{"col-6", "col-offset-2", "col-md-offset-0", "col-order-first"}, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}

	sizing := strings.Index(dot, `label="sizing"`)
	offset := strings.Index(dot, `label="offset"`)
	order := strings.Index(dot, `label="order"`)
	if sizing < 0 || offset < 0 || order < 0 {
		t.Fatalf("expected one cluster per concern\n%s", dot)
	}
	if !(sizing < offset && offset < order) {
		t.Errorf("cluster order sizing=%d offset=%d order=%d, want fixed order", sizing, offset, order)
	}
	if !strings.Contains(dot, `"col-offset-2" -> "col-md-offset-0" [label=">= 48rem"];`) {
		t.Errorf("offset chain missing\n%s", dot)
	}
	if strings.Contains(dot, `"col-6" -> "col-offset-2"`) {
		t.Error("edges must not cross concerns")
	}
}

func TestToDOTSizingKindsShareOneChain(t *testing.T) {
	// Auto and flex supersede a baseline span the same way a larger span
	// does: they compete for the same sizing declaration.
	reg := newTestRegistry(t)

	dot, err := ToDOT(reg, []string{"col-6", "col-md-auto", "col-lg-flex"}, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	if !strings.Contains(dot, `"col-6" -> "col-md-auto"`) || !strings.Contains(dot, `"col-md-auto" -> "col-lg-flex"`) {
		t.Errorf("sizing chain split across clusters\n%s", dot)
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	reg := newTestRegistry(t)

	dot, err := ToDOT(reg, []string{"col-6"}, Options{Detailed: true})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	if !strings.Contains(dot, "width: 50%") {
		t.Errorf("detailed label missing declarations\n%s", dot)
	}
}

func TestToDOTRejectsBadInput(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name    string
		classes []string
		code    errors.Code
	}{
		{"UnknownIdentifier", []string{"col-13"}, errors.ErrCodeNotFound},
		{"NotAColumnClass", []string{"row-gap-md"}, errors.ErrCodeNotFound},
		{"SameTierConflict", []string{"col-6", "col-auto"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToDOT(reg, tt.classes, Options{})
			if err == nil {
				t.Fatal("ToDOT() = nil error, want rejection")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}
