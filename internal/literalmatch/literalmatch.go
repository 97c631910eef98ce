// Package literalmatch implements the Literal Matcher (spec.md §4.4): the
// fixed-dialect fast path, a direct byte scan with no regex compilation at
// all.
//
// The scan itself is the teacher engine's own SIMD primitive
// (github.com/coregx/coregex/simd.Memmem — AVX2-accelerated rare-byte
// search for short needles, a Two-Way variant for long ones, falling back
// to a portable generic scan when the CPU lacks AVX2), which already
// implements the "single byte / 2-3 byte / generic" specialization
// spec.md §4.4 asks for; this package only adds the from-offset iteration
// and the char/rune-aware advancement rule spec.md §4.4 and §4.5 share for
// empty and successive matches.
package literalmatch

import (
	"unicode/utf8"

	"github.com/coregx/coregex/simd"

	"github.com/rcore/textmatch/internal/classify"
)

// Find returns the byte offset of the first occurrence of needle in hay at
// or after from, or -1 if absent. An empty needle matches at from.
func Find(hay, needle []byte, from int) int {
	if from > len(hay) {
		return -1
	}
	if len(needle) == 0 {
		return from
	}
	rel := simd.Memmem(hay[from:], needle)
	if rel < 0 {
		return -1
	}
	return from + rel
}

// NextCandidate returns the next byte offset to resume scanning from after
// a match ending at end (exclusive), advancing by exactly one character so
// an empty match still makes progress, per spec.md §4.5's empty-match rule:
// end+1 (one byte) in Bytes/Ascii mode, end plus the byte length of the
// UTF-8 character starting at end in Utf8/Wide mode. At or past the end of
// hay it returns end+1.
func NextCandidate(hay []byte, end int, mode classify.Mode) int {
	if end >= len(hay) {
		return end + 1
	}
	switch mode {
	case classify.Utf8, classify.Wide:
		_, size := utf8.DecodeRune(hay[end:])
		if size == 0 {
			size = 1
		}
		return end + size
	default:
		return end + 1
	}
}
