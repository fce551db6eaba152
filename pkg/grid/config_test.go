package grid

import (
	"testing"

	"github.com/colgrid/colgrid/pkg/errors"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantCode errors.Code
	}{
		{
			name: "Default",
			cfg:  Default(),
		},
		{
			name: "SixteenColumns",
			cfg:  Config{Columns: 16, Breakpoints: DefaultBreakpoints()},
		},
		{
			name:     "ZeroColumns",
			cfg:      Config{Columns: 0, Breakpoints: DefaultBreakpoints()},
			wantCode: errors.ErrCodeInvalidColumns,
		},
		{
			name:     "TooManyColumns",
			cfg:      Config{Columns: 100, Breakpoints: DefaultBreakpoints()},
			wantCode: errors.ErrCodeInvalidColumns,
		},
		{
			name:     "EmptyBreakpoints",
			cfg:      Config{Columns: 12},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name: "NonMonotonic",
			cfg: Config{Columns: 12, Breakpoints: []Breakpoint{
				{Name: "sm", MinWidth: 48},
				{Name: "md", MinWidth: 30},
			}},
			wantCode: errors.ErrCodeInvalidBreakpoint,
		},
		{
			name: "DuplicateMinWidth",
			cfg: Config{Columns: 12, Breakpoints: []Breakpoint{
				{Name: "sm", MinWidth: 30},
				{Name: "md", MinWidth: 30},
			}},
			wantCode: errors.ErrCodeInvalidBreakpoint,
		},
		{
			name: "DuplicateName",
			cfg: Config{Columns: 12, Breakpoints: []Breakpoint{
				{Name: "sm", MinWidth: 30},
				{Name: "sm", MinWidth: 48},
			}},
			wantCode: errors.ErrCodeInvalidBreakpoint,
		},
		{
			name: "ZeroMinWidth",
			cfg: Config{Columns: 12, Breakpoints: []Breakpoint{
				{Name: "sm", MinWidth: 0},
			}},
			wantCode: errors.ErrCodeInvalidBreakpoint,
		},
		{
			name: "EmptyName",
			cfg: Config{Columns: 12, Breakpoints: []Breakpoint{
				{Name: "", MinWidth: 30},
			}},
			wantCode: errors.ErrCodeInvalidBreakpoint,
		},
		{
			name: "UppercaseName",
			cfg: Config{Columns: 12, Breakpoints: []Breakpoint{
				{Name: "SM", MinWidth: 30},
			}},
			wantCode: errors.ErrCodeInvalidBreakpoint,
		},
		{
			name: "ReservedName",
			cfg: Config{Columns: 12, Breakpoints: []Breakpoint{
				{Name: "offset", MinWidth: 30},
			}},
			wantCode: errors.ErrCodeInvalidBreakpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want code %s", tt.wantCode)
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("Validate() code = %s, want %s", got, tt.wantCode)
			}
		})
	}
}

func TestSpanFractionMonotonic(t *testing.T) {
	cfg := Default()
	for n := 1; n < cfg.Columns; n++ {
		if cfg.SpanFraction(n) >= cfg.SpanFraction(n+1) {
			t.Errorf("SpanFraction(%d) = %f not less than SpanFraction(%d) = %f",
				n, cfg.SpanFraction(n), n+1, cfg.SpanFraction(n+1))
		}
	}
	if got := cfg.SpanFraction(cfg.Columns); got != 1.0 {
		t.Errorf("SpanFraction(%d) = %f, want 1.0", cfg.Columns, got)
	}
}

func TestSpanFractionOutOfRangePanics(t *testing.T) {
	cfg := Default()
	for _, n := range []int{0, -1, 13} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SpanFraction(%d) did not panic", n)
				}
			}()
			cfg.SpanFraction(n)
		}()
	}
}

func TestConfigBreakpoint(t *testing.T) {
	cfg := Default()

	bp, ok := cfg.Breakpoint("md")
	if !ok {
		t.Fatal("Breakpoint(md) not found")
	}
	if bp.MinWidth != 48 {
		t.Errorf("md MinWidth = %f, want 48", bp.MinWidth)
	}

	if _, ok := cfg.Breakpoint("xl"); ok {
		t.Error("Breakpoint(xl) should not exist in the default table")
	}
}

func TestDefaultThresholds(t *testing.T) {
	// The thresholds are a compatibility contract; see the naming
	// contract notes in doc.go.
	want := map[string]float64{"sm": 30, "md": 48, "lg": 64}
	for _, bp := range DefaultBreakpoints() {
		if want[bp.Name] != bp.MinWidth {
			t.Errorf("%s MinWidth = %f, want %f", bp.Name, bp.MinWidth, want[bp.Name])
		}
	}
}
