// Package textmatch is the string pattern-matching core: split, grep,
// locate, substitute, and raw-byte search, dispatched across a literal, a
// POSIX-style extended-regex, and a Perl-compatible dialect, built on
// github.com/coregx/coregex for the Extended/Perl engines.
package textmatch

import "github.com/rcore/textmatch/internal/warn"

// CommonOptions are the dialect/behavior flags every matching operation
// accepts.
type CommonOptions struct {
	IgnoreCase bool
	Perl       bool
	Fixed      bool
	UseBytes   bool
}

// SplitOptions controls Split.
type SplitOptions struct {
	CommonOptions
}

// GrepOptions controls Grep.
type GrepOptions struct {
	CommonOptions
	Value  bool
	Invert bool
}

// MatchOptions controls Grepl, Regexpr, Gregexpr, Sub, Gsub, and Regexec.
type MatchOptions struct {
	CommonOptions
}

// RawOptions controls GrepRaw.
type RawOptions struct {
	IgnoreCase bool
	Fixed      bool
	Value      bool
	All        bool
	Invert     bool
	Offset     int
}

// Warning is one non-fatal diagnostic produced during a call.
type Warning = warn.Warning

// BoolResult is one element's grepl outcome: Missing elements report
// Valid=false so the caller can distinguish "no match" from "unknown."
type BoolResult struct {
	Match bool
	Valid bool
}

// MatchIndex is one element's regexpr/regexec-style result: a start
// position (1-based, -1 for no match), its length, and any capture
// groups.
type MatchIndex struct {
	Start  int
	Length int

	CaptureStart  []int
	CaptureLength []int
	CaptureNames  []string
}

// GrepResult is grep's dual-shaped output: either the 0-based indices of
// matching elements, or (when Value is set) the matching elements
// themselves.
type GrepResult struct {
	Indices []int
	Values  []string
}

// RawResult is GrepRaw's output: offsets and, when requested, the matched
// byte slices.
type RawResult struct {
	Offsets [][2]int
	Values  [][]byte
}
