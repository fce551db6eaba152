package grid

// Breakpoint is a named minimum-viewport-width threshold at which layout
// rules change. Widths are in rem so the thresholds track the user's root
// font size. The mobile baseline (below the smallest breakpoint) is
// implicit and is not itself a Breakpoint.
type Breakpoint struct {
	Name     string  `json:"name"`
	MinWidth float64 `json:"min_width"` // rem
}

// Default breakpoint thresholds (rem). These match the widely deployed
// 480/768/1024 px tiers at a 16 px root font size and must stay bit-exact
// for drop-in compatibility with existing stylesheets.
const (
	DefaultSmallMinWidth  = 30
	DefaultMediumMinWidth = 48
	DefaultLargeMinWidth  = 64
)

// DefaultBreakpoints returns the standard sm/md/lg breakpoint table.
// The returned slice is a fresh copy and may be modified by the caller.
func DefaultBreakpoints() []Breakpoint {
	return []Breakpoint{
		{Name: "sm", MinWidth: DefaultSmallMinWidth},
		{Name: "md", MinWidth: DefaultMediumMinWidth},
		{Name: "lg", MinWidth: DefaultLargeMinWidth},
	}
}
