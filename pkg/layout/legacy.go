package layout

import (
	"fmt"
	"maps"
	"os"
	"runtime"
	"sync"
)

// LegacyBreakpoint is the single historical breakpoint the deprecated
// proportional mode stacked against. It predates the breakpoint override
// map and is fixed forever for compatibility.
const LegacyBreakpoint = "sm"

// envProduction disables deprecation advisories when COLGRID_ENV is set
// to this value. Advisories are a development aid, not telemetry.
const envProduction = "production"

// advisoryTracker records which call sites have already been warned so a
// deprecated pattern inside a render loop logs once per session, not once
// per frame.
type advisoryTracker struct {
	seen sync.Map // program counter → struct{}
}

// advise runs fn at most once per distinct caller. skip counts stack
// frames above advise itself, as in runtime.Caller.
func (t *advisoryTracker) advise(skip int, fn func(callsite string)) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		pc = 0
	}
	if _, loaded := t.seen.LoadOrStore(pc, struct{}{}); loaded {
		return
	}
	fn(fmt.Sprintf("%s:%d", file, line))
}

// translateProportional rewrites a legacy proportional intent into the
// breakpoint-scoped form: the baseline span moves to the legacy "sm"
// tier, so the cell stacks below it and keeps its proportional width at
// or above it. The translation goes through the same registry lookups as
// a hand-written At override - there is no parallel legacy rule set.
//
// The translation never blocks and never alters non-span fields. If the
// active configuration has no "sm" breakpoint the span stays at the
// baseline, which is the closest equivalent behavior.
func (r *Resolver) translateProportional(in Intent) Intent {
	if os.Getenv("COLGRID_ENV") != envProduction {
		r.advisories.advise(2, func(callsite string) {
			r.logger.Warn("Proportional is deprecated; scope the span to a breakpoint instead",
				"replacement", fmt.Sprintf("At: map[string]Intent{%q: {Span: n}}", LegacyBreakpoint),
				"callsite", callsite)
		})
	}

	out := in
	out.Proportional = false

	if in.Span == 0 {
		return out
	}
	if _, ok := r.reg.Config().Breakpoint(LegacyBreakpoint); !ok {
		return out
	}

	at := make(map[string]Intent, len(in.At)+1)
	maps.Copy(at, in.At)
	ov := at[LegacyBreakpoint]
	if ov.Span == 0 && !ov.Auto && !ov.Flex {
		ov.Span = in.Span
	}
	at[LegacyBreakpoint] = ov

	out.At = at
	out.Span = 0
	return out
}
