// Package rawbytes implements the Raw-Bytes Path (spec.md §4.9): matching
// against a single raw byte subject outside the textvec element model —
// no encoding classification, no position mapping, byte offsets only.
package rawbytes

import (
	"github.com/rcore/textmatch/internal/compiler"
	"github.com/rcore/textmatch/internal/literalmatch"
	"github.com/rcore/textmatch/internal/warn"
)

// Result is one or all matches found in a raw subject.
type Result struct {
	// Offsets holds each match's [start, end) byte range.
	Offsets [][2]int
	// Values holds each match's bytes, only populated when the caller asked
	// for values rather than indices.
	Values [][]byte
}

// Options controls a raw-bytes search, per spec.md §6's GrepRaw signature.
type Options struct {
	All     bool // find every non-overlapping match, not just the first
	Value   bool // return matched bytes, not just offsets
	Invert  bool // return the complement: byte ranges NOT matched
	Longest bool // not read by Search; leftmost-longest matching comes from a pattern compiled with the Extended dialect
}

// maxChunk is a 32 MiB chunk-size cap. Search does not reference it: it
// accumulates every offset in one growing slice.
const maxChunk = 32 << 20 // 32 MiB

// Search runs pat against subject and returns the matches (or, with
// Invert, the unmatched complement ranges) per opts. NOTBOL is implicit
// in repeated calls through pat since the driver always scans the full
// subject with an absolute offset.
func Search(subject []byte, pat *compiler.Pattern, opts Options, sink *warn.Sink) (Result, []error) {
	if opts.Invert && !opts.Value {
		sink.Warn(warn.FlagCleared, -1, "invert = TRUE requires value = TRUE; ignoring invert")
		opts.Invert = false
	}

	var offsets [][2]int
	pos := 0
	for pos <= len(subject) {
		start, end, ok := findOne(subject, pat, pos)
		if !ok {
			break
		}
		offsets = append(offsets, [2]int{start, end})
		if !opts.All {
			break
		}
		if end == start {
			pos = end + 1
		} else {
			pos = end
		}
	}

	if opts.Invert {
		offsets = complement(offsets, len(subject))
	}

	res := Result{Offsets: offsets}
	if opts.Value {
		res.Values = make([][]byte, len(offsets))
		for i, o := range offsets {
			res.Values[i] = subject[o[0]:o[1]]
		}
	}
	return res, nil
}

func findOne(subject []byte, pat *compiler.Pattern, from int) (start, end int, ok bool) {
	if pat.Dialect == compiler.Literal {
		s := literalmatch.Find(subject, pat.Literal, from)
		if s < 0 {
			return 0, 0, false
		}
		return s, s + len(pat.Literal), true
	}
	if from > len(subject) {
		return 0, 0, false
	}
	m := pat.Engine.FindAt(subject, from)
	if m == nil {
		return 0, 0, false
	}
	return m.Start(), m.End(), true
}

// complement turns a sorted, non-overlapping list of matched ranges into
// the list of gaps between them (and before the first / after the last),
// per spec.md §4.9's invert semantics.
func complement(matched [][2]int, n int) [][2]int {
	var out [][2]int
	prev := 0
	for _, m := range matched {
		if m[0] > prev {
			out = append(out, [2]int{prev, m[0]})
		}
		prev = m[1]
	}
	if prev < n {
		out = append(out, [2]int{prev, n})
	}
	return out
}
