package textmatch

import (
	"github.com/rcore/textmatch/internal/classify"
	"github.com/rcore/textmatch/internal/compiler"
	"github.com/rcore/textmatch/internal/warn"
	"github.com/rcore/textmatch/textvec"
)

// call bundles the per-call state every operation shares: the execution
// mode decided once up front, the one compiled pattern every element is
// matched against, and the warning sink accumulating diagnostics across
// every element.
type call struct {
	dialect compiler.Dialect
	mode    classify.Mode
	pat     *compiler.Pattern
	release func()
	sink    *warn.Sink
}

func dialectFor(flags classify.Flags) compiler.Dialect {
	switch {
	case flags.Fixed:
		return compiler.Literal
	case flags.Perl:
		return compiler.Perl
	default:
		return compiler.Extended
	}
}

// prepare runs the Encoding Classifier and Pattern Compiler Façade once
// for an entire call, per spec.md's data-flow diagram ("Pattern Compiler
// Façade (once)").
func prepare(pattern string, replacement *string, x *textvec.Vector, opts CommonOptions) (*call, error) {
	return prepareWithSink(pattern, replacement, x, opts, warn.NewSink())
}

// prepareWithSink is prepare with a caller-supplied sink, for operations
// (like Split) that compile a fresh pattern per element but want one
// combined warning list for the whole call.
func prepareWithSink(pattern string, replacement *string, x *textvec.Vector, opts CommonOptions, sink *warn.Sink) (*call, error) {
	flags := classify.Flags{
		UseBytes:   opts.UseBytes,
		Fixed:      opts.Fixed,
		Perl:       opts.Perl,
		IgnoreCase: opts.IgnoreCase,
	}

	patEl := textvec.NewString(pattern)
	var replEl *textvec.Element
	if replacement != nil {
		e := textvec.NewString(*replacement)
		replEl = &e
	}

	mode := classify.Classify(patEl, replEl, x, &flags, classify.Locale{}, sink)
	dialect := dialectFor(flags)

	pat, release, err := compiler.Compile([]byte(pattern), dialect, mode, flags.IgnoreCase, sink)
	if err != nil {
		return nil, err
	}
	return &call{dialect: dialect, mode: mode, pat: pat, release: release, sink: sink}, nil
}
