package textmatch

import (
	"context"

	"github.com/rcore/textmatch/internal/alloc"
	"github.com/rcore/textmatch/internal/classify"
	"github.com/rcore/textmatch/internal/compiler"
	"github.com/rcore/textmatch/internal/driver"
	"github.com/rcore/textmatch/internal/normalize"
	"github.com/rcore/textmatch/internal/replace"
	"github.com/rcore/textmatch/textvec"
)

// Sub replaces the first match of pat in every element of x with repl,
// per spec.md §6's `sub(pat, rep, x, ...) → text_vector` signature.
// Elements with no match, and Missing elements, pass through unchanged
// (Missing stays Missing).
func Sub(ctx context.Context, pat, repl string, x *textvec.Vector, opts MatchOptions) (*textvec.Vector, []Warning) {
	return substitute(ctx, pat, repl, x, opts, false)
}

// Gsub replaces every match of pat in every element of x with repl, per
// spec.md §6's `gsub(pat, rep, x, ...) → text_vector` signature.
func Gsub(ctx context.Context, pat, repl string, x *textvec.Vector, opts MatchOptions) (*textvec.Vector, []Warning) {
	return substitute(ctx, pat, repl, x, opts, true)
}

func substitute(ctx context.Context, pat, repl string, x *textvec.Vector, opts MatchOptions, all bool) (*textvec.Vector, []Warning) {
	c, err := prepare(pat, &repl, x, opts.CommonOptions)
	if err != nil {
		return nil, []Warning{{Message: err.Error()}}
	}
	defer c.release()

	tmpl := replace.Parse([]byte(repl))
	out := &textvec.Vector{
		Elements: make([]textvec.Element, x.Len()),
		Names:    x.Names,
	}

	var fatal error
	for i := 0; i < x.Len(); i++ {
		if ctx != nil && ctx.Err() != nil {
			break
		}
		e := x.At(i)
		if e.IsMissing() {
			out.Elements[i] = textvec.Missing
			continue
		}

		scope := alloc.Mark()
		buf := normalize.Normalize(e, c.mode, scope, i, c.sink)
		if buf.Missing {
			out.Elements[i] = textvec.Missing
			scope.Release()
			continue
		}
		if buf.BadInput {
			out.Elements[i] = e
			scope.Release()
			continue
		}

		var matches []driver.Match
		if all {
			matches = driver.All(buf.Bytes, c.pat, c.mode, i, c.sink)
		} else if m := driver.First(buf.Bytes, c.pat, 0); m != nil {
			matches = []driver.Match{*m}
		}

		if len(matches) == 0 {
			out.Elements[i] = e
			scope.Release()
			continue
		}

		built, buildErr := buildReplacement(buf.Bytes, matches, tmpl, c.pat, c.dialect == compiler.Perl, c.mode, len(repl))
		if buildErr != nil {
			fatal = buildErr
			scope.Release()
			break
		}
		out.Elements[i] = textvec.NewElement(built, e.Encoding())
		scope.Release()
	}
	if fatal != nil {
		return nil, append(c.sink.Warnings(), Warning{Message: fatal.Error()})
	}
	return out, c.sink.Warnings()
}

// buildReplacement stitches the unmatched spans of buf together with the
// expansion of tmpl at each match, per spec.md §4.7's growable-buffer and
// overflow-refusal policy.
func buildReplacement(buf []byte, matches []driver.Match, tmpl replace.Template, pat *compiler.Pattern, perl bool, mode classify.Mode, replLen int) ([]byte, error) {
	capHint := replace.EstimateCapacity(len(buf), len(matches), replLen)
	if err := replace.CheckOverflow(capHint); err != nil {
		return nil, err
	}

	out := make([]byte, 0, capHint)
	prev := 0
	for _, m := range matches {
		out = append(out, buf[prev:m.Start]...)
		out = replace.Expand(out, tmpl, buf, m.Groups, pat.Names, perl, mode)
		if err := replace.CheckOverflow(len(out)); err != nil {
			return nil, err
		}
		prev = m.End
	}
	out = append(out, buf[prev:]...)
	return out, nil
}
