package textmatch

import (
	"context"

	"github.com/rcore/textmatch/internal/alloc"
	"github.com/rcore/textmatch/internal/driver"
	"github.com/rcore/textmatch/internal/normalize"
	"github.com/rcore/textmatch/internal/result"
	"github.com/rcore/textmatch/textvec"
)

func toMatchIndex(p result.Position) MatchIndex {
	return MatchIndex{
		Start:         p.Start,
		Length:        p.Length,
		CaptureStart:  p.CaptureStart,
		CaptureLength: p.CaptureLength,
		CaptureNames:  p.CaptureNames,
	}
}

var noMatchIndex = toMatchIndex(result.NoMatch)

// Regexpr returns the first match position (and, for Perl patterns with
// capture groups, each group's position) in every element of x, per
// spec.md §6's `regexpr(pat, x, ...) → int_vector with match.length
// [+ capture.*]` signature: one MatchIndex per element of x, parallel to
// the input. Missing elements and elements with no match report the -1
// sentinel.
func Regexpr(ctx context.Context, pat string, x *textvec.Vector, opts MatchOptions) ([]MatchIndex, []Warning) {
	c, err := prepare(pat, nil, x, opts.CommonOptions)
	if err != nil {
		return nil, []Warning{{Message: err.Error()}}
	}
	defer c.release()

	out := make([]MatchIndex, x.Len())
	for i := 0; i < x.Len(); i++ {
		if ctx != nil && ctx.Err() != nil {
			break
		}
		e := x.At(i)
		if e.IsMissing() {
			out[i] = noMatchIndex
			continue
		}

		scope := alloc.Mark()
		buf := normalize.Normalize(e, c.mode, scope, i, c.sink)
		if buf.Missing || buf.BadInput {
			out[i] = noMatchIndex
			scope.Release()
			continue
		}

		m := driver.First(buf.Bytes, c.pat, 0)
		if m == nil {
			out[i] = noMatchIndex
			scope.Release()
			continue
		}
		p := result.One(buf.Bytes, *m, c.mode, c.pat.Names)
		out[i] = toMatchIndex(p)
		scope.Release()
	}
	return out, c.sink.Warnings()
}

// Gregexpr returns every match position in every element of x, per
// spec.md §6's `gregexpr(pat, x, ...) → list<int_vector> with match.length
// [+ capture.*]` signature: one slice of MatchIndex per element of x,
// each holding every match found in that element, or a single -1
// sentinel entry when the element has no match or is Missing.
func Gregexpr(ctx context.Context, pat string, x *textvec.Vector, opts MatchOptions) ([][]MatchIndex, []Warning) {
	c, err := prepare(pat, nil, x, opts.CommonOptions)
	if err != nil {
		return nil, []Warning{{Message: err.Error()}}
	}
	defer c.release()

	out := make([][]MatchIndex, x.Len())
	for i := 0; i < x.Len(); i++ {
		if ctx != nil && ctx.Err() != nil {
			break
		}
		e := x.At(i)
		if e.IsMissing() {
			out[i] = []MatchIndex{noMatchIndex}
			continue
		}

		scope := alloc.Mark()
		buf := normalize.Normalize(e, c.mode, scope, i, c.sink)
		if buf.Missing || buf.BadInput {
			scope.Release()
			out[i] = []MatchIndex{noMatchIndex}
			continue
		}

		matches := driver.All(buf.Bytes, c.pat, c.mode, i, c.sink)
		if len(matches) == 0 {
			out[i] = []MatchIndex{noMatchIndex}
			scope.Release()
			continue
		}
		positions := result.All(buf.Bytes, matches, c.mode, c.pat.Names)
		mi := make([]MatchIndex, len(positions))
		for j, p := range positions {
			mi[j] = toMatchIndex(p)
		}
		out[i] = mi
		scope.Release()
	}
	return out, c.sink.Warnings()
}

// Regexec returns the first match and its capture groups in every element
// of x, one MatchIndex per element (the -1 sentinel when there is none),
// per spec.md §6's `regexec(pat, x, ...) → list<int_vector>` signature
// ("match + groups").
func Regexec(ctx context.Context, pat string, x *textvec.Vector, opts MatchOptions) ([]MatchIndex, []Warning) {
	c, err := prepare(pat, nil, x, opts.CommonOptions)
	if err != nil {
		return nil, []Warning{{Message: err.Error()}}
	}
	defer c.release()

	var out []MatchIndex
	for i := 0; i < x.Len(); i++ {
		if ctx != nil && ctx.Err() != nil {
			break
		}
		e := x.At(i)
		if e.IsMissing() {
			out = append(out, noMatchIndex)
			continue
		}

		scope := alloc.Mark()
		buf := normalize.Normalize(e, c.mode, scope, i, c.sink)
		if buf.Missing || buf.BadInput {
			scope.Release()
			out = append(out, noMatchIndex)
			continue
		}

		m := driver.First(buf.Bytes, c.pat, 0)
		if m == nil {
			scope.Release()
			out = append(out, noMatchIndex)
			continue
		}
		p := result.One(buf.Bytes, *m, c.mode, c.pat.Names)
		out = append(out, toMatchIndex(p))
		scope.Release()
	}
	return out, c.sink.Warnings()
}
