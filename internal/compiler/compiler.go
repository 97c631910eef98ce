// Package compiler implements the Pattern Compiler Façade (spec.md §4.3): a
// uniform compile/release contract over the three dialects, hiding which
// one of them actually owns a compiled engine handle.
package compiler

import (
	"os"
	"strconv"
	"sync"

	"github.com/coregx/coregex/meta"

	"github.com/rcore/textmatch/internal/classify"
	"github.com/rcore/textmatch/internal/warn"
)

// Dialect selects which of the three matching engines a Pattern uses.
type Dialect int

const (
	// Literal is the no-metacharacter fast path; no engine is compiled.
	Literal Dialect = iota
	// Extended is POSIX-style leftmost-longest matching.
	Extended
	// Perl is leftmost-first matching with the full Perl-compatible
	// syntax (named groups, non-greedy quantifiers, etc).
	Perl
)

// Pattern is the opaque Compiled Pattern handle spec.md §3 describes:
// engine identity, compiled form, and capture-group metadata, bundled
// behind one release contract regardless of dialect.
type Pattern struct {
	Dialect     Dialect
	Mode        classify.Mode
	Literal     []byte      // set only for Literal
	Engine      *meta.Engine // set only for Extended/Perl
	NumCaptures int
	Names       []string // capture-group names; index 0 is always ""
}

// Compile builds a Pattern for pattern under dialect/mode. The returned
// release function must be called on every exit path, including error
// paths, per spec.md §3's Lifecycle section — it is a no-op today (Go's
// garbage collector owns the compiled engine's memory) but keeps the
// acquire/release shape spec.md §9's "scoped cleanup" design note asks
// for, the same shape github.com/coregx/coregex/meta's SearchState pool
// already uses for per-search VM state.
func Compile(pattern []byte, dialect Dialect, mode classify.Mode, caseless bool, sink *warn.Sink) (*Pattern, func(), error) {
	release := func() {}

	if dialect == Literal {
		return &Pattern{Dialect: Literal, Mode: mode, Literal: pattern}, release, nil
	}

	src := string(pattern)
	if caseless {
		src = "(?i)" + src
	}

	cfg := meta.DefaultConfig()
	cfg.MaxDFAStates = scaleDFACache(jitBudgetMB(sink))

	engine, err := meta.CompileWithConfig(src, cfg)
	if err != nil {
		return nil, release, warn.Fatalf("invalid regular expression %q: %s", pattern, err)
	}
	if dialect == Extended {
		// POSIX leftmost-longest semantics, standing in for TRE's default
		// behavior per SPEC_FULL.md §2.
		engine.SetLongest(true)
	}

	return &Pattern{
		Dialect:     dialect,
		Mode:        mode,
		Engine:      engine,
		NumCaptures: engine.NumCaptures(),
		Names:       engine.SubexpNames(),
	}, release, nil
}

const (
	defaultJITBudgetMB = 64.0
	minJITBudgetMB     = 0.0
	maxJITBudgetMB     = 1000.0
	defaultDFAStates   = 10000
)

var (
	jitBudgetOnce sync.Once
	jitBudgetVal  float64
)

// jitBudgetMB resolves PCRE_JIT_STACK_MAXSIZE once per process, per
// spec.md §4.3 and §9 ("process-wide... created lazily on first use").
func jitBudgetMB(sink *warn.Sink) float64 {
	jitBudgetOnce.Do(func() {
		jitBudgetVal = defaultJITBudgetMB
		raw, ok := os.LookupEnv("PCRE_JIT_STACK_MAXSIZE")
		if !ok || raw == "" {
			return
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < minJITBudgetMB || f > maxJITBudgetMB {
			if sink != nil {
				sink.Warn(warn.FlagCleared, -1, "ignoring out-of-range PCRE_JIT_STACK_MAXSIZE=%q (must be in [0, 1000])", raw)
			}
			return
		}
		jitBudgetVal = f
	})
	return jitBudgetVal
}

// scaleDFACache maps the JIT-stack MB budget onto the lazy-DFA state
// cache, the one process-wide resource knob the coregex engine actually
// has (it has no JIT), per SPEC_FULL.md §5.
func scaleDFACache(budgetMB float64) uint32 {
	states := uint32(budgetMB / defaultJITBudgetMB * defaultDFAStates)
	if states < 1 {
		states = 1
	}
	const maxStates = 1_000_000
	if states > maxStates {
		states = maxStates
	}
	return states
}
