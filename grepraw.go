package textmatch

import (
	"github.com/rcore/textmatch/internal/classify"
	"github.com/rcore/textmatch/internal/compiler"
	"github.com/rcore/textmatch/internal/rawbytes"
	"github.com/rcore/textmatch/internal/warn"
)

// GrepRaw matches pat against a single raw byte subject, bypassing text
// vector classification entirely, per spec.md §6's `grepRaw(pat, x,
// offset, ignore_case, fixed, value, all, invert) → int_vector | bytes |
// list<bytes>` signature and spec.md §4.9's Raw-Bytes Path.
func GrepRaw(pat, subject []byte, opts RawOptions) (RawResult, []Warning) {
	sink := warn.NewSink()

	dialect := compiler.Extended
	if opts.Fixed {
		dialect = compiler.Literal
	}

	pattern, release, err := compiler.Compile(pat, dialect, classify.Bytes, opts.IgnoreCase, sink)
	if err != nil {
		return RawResult{}, []Warning{{Message: err.Error()}}
	}
	defer release()

	offset := opts.Offset
	if offset < 0 || offset > len(subject) {
		return RawResult{}, append(sink.Warnings(), Warning{Message: "invalid raw offset"})
	}

	res, errs := rawbytes.Search(subject[offset:], pattern, rawbytes.Options{
		All:    opts.All,
		Value:  opts.Value,
		Invert: opts.Invert,
	}, sink)
	for _, e := range errs {
		if e != nil {
			return RawResult{}, append(sink.Warnings(), Warning{Message: e.Error()})
		}
	}

	// Shift into the caller's subject (undoing the opts.Offset slice) and
	// convert the 0-based half-open range into a 1-based one, per spec.md
	// §6's wire invariant that every user-visible position is 1-based.
	offsets := make([][2]int, len(res.Offsets))
	for i, o := range res.Offsets {
		offsets[i] = [2]int{o[0] + offset + 1, o[1] + offset + 1}
	}
	return RawResult{Offsets: offsets, Values: res.Values}, sink.Warnings()
}
