package textmatch

import (
	"context"

	"github.com/rcore/textmatch/internal/alloc"
	"github.com/rcore/textmatch/internal/normalize"
	"github.com/rcore/textmatch/internal/split"
	"github.com/rcore/textmatch/internal/warn"
	"github.com/rcore/textmatch/textvec"
)

// Split tokenizes every element of x on the corresponding element of tok
// (recycled if shorter than x), per spec.md §6's `split(x, tok, fixed,
// perl, use_bytes) → list<text_vector>` signature. A Missing element of x
// produces a single-element Vector containing Missing; a Missing or
// absent tok element passes x's element through unsplit.
func Split(ctx context.Context, x, tok *textvec.Vector, opts SplitOptions) ([]*textvec.Vector, []Warning) {
	sink := warn.NewSink()
	out := make([]*textvec.Vector, x.Len())

	for i := 0; i < x.Len(); i++ {
		if ctx != nil && ctx.Err() != nil {
			break
		}
		e := x.At(i)
		if e.IsMissing() {
			out[i] = &textvec.Vector{Elements: []textvec.Element{textvec.Missing}}
			continue
		}
		if tok.Len() == 0 {
			out[i] = &textvec.Vector{Elements: []textvec.Element{e}}
			continue
		}
		tokEl := tok.At(i % tok.Len())
		if tokEl.IsMissing() {
			out[i] = &textvec.Vector{Elements: []textvec.Element{e}}
			continue
		}

		c, err := prepareWithSink(tokEl.String(), nil, x, opts.CommonOptions, sink)
		if err != nil {
			out[i] = &textvec.Vector{Elements: []textvec.Element{e}}
			continue
		}

		scope := alloc.Mark()
		buf := normalize.Normalize(e, c.mode, scope, i, c.sink)
		if buf.Missing || buf.BadInput {
			out[i] = &textvec.Vector{Elements: []textvec.Element{e}}
			scope.Release()
			c.release()
			continue
		}

		var tokens []string
		if tokEl.Len() == 0 {
			tokens = split.Chars(buf.Bytes, c.mode)
		} else {
			tokens = split.Tokenize(buf.Bytes, c.pat, c.mode, i, c.sink)
		}
		out[i] = textvec.NewVector(tokens...)
		scope.Release()
		c.release()
	}
	return out, sink.Warnings()
}
