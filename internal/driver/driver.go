// Package driver implements the Engine Drivers (spec.md §4.5): the
// first-match/all-matches loops shared by every dialect, including
// empty-match advancement, infinite-empty-match detection, and capture
// extraction.
package driver

import (
	"github.com/rcore/textmatch/internal/classify"
	"github.com/rcore/textmatch/internal/compiler"
	"github.com/rcore/textmatch/internal/literalmatch"
	"github.com/rcore/textmatch/internal/warn"
)

// Match is one match against a normalized buffer: a half-open byte range
// plus, for dialects with capture groups, the byte range of each group
// (group 0 is the whole match; an absent optional group is nil).
type Match struct {
	Start, End int
	Groups     [][]int
}

// IsEmpty reports whether this is a zero-length match.
func (m Match) IsEmpty() bool { return m.Start == m.End }

// at runs one match attempt starting at byte offset pos in buf. NOTBOL is
// implicit: the underlying engine always anchors ^ against byte 0 of buf
// regardless of pos, which is exactly the NOTBOL-after-first-iteration
// behavior spec.md §4.5 asks for, since buf (not a slice of it) is always
// passed through.
func at(buf []byte, pat *compiler.Pattern, pos int) *Match {
	switch pat.Dialect {
	case compiler.Literal:
		start := literalmatch.Find(buf, pat.Literal, pos)
		if start < 0 {
			return nil
		}
		end := start + len(pat.Literal)
		return &Match{Start: start, End: end, Groups: [][]int{{start, end}}}

	default: // Extended, Perl
		if pos > len(buf) {
			return nil
		}
		sub := pat.Engine.FindSubmatchAt(buf, pos)
		if sub == nil {
			return nil
		}
		groups := make([][]int, sub.NumCaptures())
		for i := range groups {
			groups[i] = sub.GroupIndex(i)
		}
		return &Match{Start: sub.Start(), End: sub.End(), Groups: groups}
	}
}

// First returns the first match in buf at or after from, or nil if there
// is none.
func First(buf []byte, pat *compiler.Pattern, from int) *Match {
	return at(buf, pat, from)
}

// All returns every non-overlapping match in buf, left to right, applying
// spec.md §4.5's empty-match advancement rule: after a non-empty match,
// resume from its end; after an empty match, advance by one character
// (mode-aware) before retrying. If advancing cannot move the scan forward
// — the degenerate case spec.md §4.5 calls "pattern matches an empty
// string infinitely" — a single warning is emitted and only the matches
// found so far are returned, satisfying the bound in spec.md §8 property 7
// (at most len(buf)+1 matches).
func All(buf []byte, pat *compiler.Pattern, mode classify.Mode, elementIndex int, sink *warn.Sink) []Match {
	var results []Match
	pos := 0

	for pos <= len(buf) {
		m := at(buf, pat, pos)
		if m == nil {
			break
		}
		results = append(results, *m)

		if m.IsEmpty() {
			next := literalmatch.NextCandidate(buf, m.End, mode)
			if next <= pos {
				sink.Warn(warn.InfiniteEmptyMatch, elementIndex, "pattern matches an empty string infinitely, returning first match only")
				break
			}
			pos = next
		} else {
			pos = m.End
		}
	}
	return results
}
