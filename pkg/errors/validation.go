package errors

import (
	"regexp"
	"unicode"
)

// breakpointNameRegex matches valid breakpoint names. Names become part of
// generated rule identifiers (e.g., "col-md-6"), so they must be lowercase
// alphanumeric and must not contain the identifier separator "-".
var breakpointNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// ValidateBreakpointName validates a breakpoint name for use in rule
// identifiers. Names must be short lowercase alphanumeric tokens starting
// with a letter ("sm", "md", "lg", "xl2", ...).
func ValidateBreakpointName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidBreakpoint, "breakpoint name cannot be empty")
	}

	if len(name) > 16 {
		return New(ErrCodeInvalidBreakpoint, "breakpoint name too long (max 16 characters): %q", name)
	}

	if !breakpointNameRegex.MatchString(name) {
		return New(ErrCodeInvalidBreakpoint, "breakpoint name must be lowercase alphanumeric starting with a letter: %q", name)
	}

	return nil
}

// ValidatePresetName validates a user-supplied preset name.
// Presets are stored and listed verbatim, so the rules are conservative:
// non-empty, printable, no control characters, bounded length.
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidPreset, "preset name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPreset, "preset name contains control characters")
		}
	}

	return nil
}
