package textmatch

import (
	"context"

	"github.com/rcore/textmatch/internal/alloc"
	"github.com/rcore/textmatch/internal/driver"
	"github.com/rcore/textmatch/internal/normalize"
	"github.com/rcore/textmatch/textvec"
)

// Grep returns either the indices of elements matching pat, or (with
// opts.Value) the matching elements themselves, per spec.md §6's
// `grep(pat, x, ...) → indices | filtered text` signature. Missing
// elements never match.
func Grep(ctx context.Context, pat string, x *textvec.Vector, opts GrepOptions) (GrepResult, []Warning) {
	c, err := prepare(pat, nil, x, opts.CommonOptions)
	if err != nil {
		return GrepResult{}, []Warning{{Message: err.Error()}}
	}
	defer c.release()

	var res GrepResult
	for i := 0; i < x.Len(); i++ {
		if ctx != nil && ctx.Err() != nil {
			break
		}
		e := x.At(i)
		if e.IsMissing() {
			continue
		}

		scope := alloc.Mark()
		buf := normalize.Normalize(e, c.mode, scope, i, c.sink)
		if buf.Missing || buf.BadInput {
			scope.Release()
			continue
		}

		m := driver.First(buf.Bytes, c.pat, 0)
		matched := m != nil
		scope.Release()

		if matched != opts.Invert {
			if opts.Value {
				res.Values = append(res.Values, e.String())
			} else {
				res.Indices = append(res.Indices, i)
			}
		}
	}
	return res, c.sink.Warnings()
}

// Grepl reports, per element, whether pat matches, per spec.md §6's
// `grepl(pat, x, ...) → bool_vector` signature.
func Grepl(ctx context.Context, pat string, x *textvec.Vector, opts MatchOptions) ([]BoolResult, []Warning) {
	c, err := prepare(pat, nil, x, opts.CommonOptions)
	if err != nil {
		return nil, []Warning{{Message: err.Error()}}
	}
	defer c.release()

	out := make([]BoolResult, x.Len())
	for i := 0; i < x.Len(); i++ {
		if ctx != nil && ctx.Err() != nil {
			break
		}
		e := x.At(i)
		if e.IsMissing() {
			out[i] = BoolResult{Valid: false}
			continue
		}

		scope := alloc.Mark()
		buf := normalize.Normalize(e, c.mode, scope, i, c.sink)
		if buf.Missing || buf.BadInput {
			scope.Release()
			out[i] = BoolResult{Valid: false}
			continue
		}

		m := driver.First(buf.Bytes, c.pat, 0)
		scope.Release()
		out[i] = BoolResult{Match: m != nil, Valid: true}
	}
	return out, c.sink.Warnings()
}
