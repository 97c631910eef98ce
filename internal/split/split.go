// Package split implements the Splitter (spec.md §4.8): tokenizing one
// normalized element against one compiled pattern, including the
// empty-pattern and missing-pattern special cases.
package split

import (
	"unicode/utf8"

	"github.com/rcore/textmatch/internal/classify"
	"github.com/rcore/textmatch/internal/compiler"
	"github.com/rcore/textmatch/internal/driver"
	"github.com/rcore/textmatch/internal/warn"
)

// Chars splits buf into one token per character, mode-aware: single bytes
// for Bytes/Ascii, code points for Utf8, and (approximated as code points,
// since Go has no distinct wide-character representation) Wide. This is
// spec.md §4.8's empty-pattern case.
func Chars(buf []byte, mode classify.Mode) []string {
	if len(buf) == 0 {
		return []string{}
	}
	switch mode {
	case classify.Utf8, classify.Wide:
		out := make([]string, 0, len(buf))
		for i := 0; i < len(buf); {
			_, size := utf8.DecodeRune(buf[i:])
			if size == 0 {
				size = 1
			}
			out = append(out, string(buf[i:i+size]))
			i += size
		}
		return out
	default:
		out := make([]string, len(buf))
		for i, b := range buf {
			out[i] = string([]byte{b})
		}
		return out
	}
}

// Tokenize splits buf on pat, cutting at every match boundary and keeping
// a non-empty tail after the last match as a final token, per spec.md
// §4.8's two-pass (count-then-collect, here done in one pass since Go
// slices grow) tokenization. A pattern that never matches returns buf
// unsplit as the sole token.
func Tokenize(buf []byte, pat *compiler.Pattern, mode classify.Mode, elementIndex int, sink *warn.Sink) []string {
	matches := driver.All(buf, pat, mode, elementIndex, sink)
	if len(matches) == 0 {
		return []string{string(buf)}
	}

	var out []string
	prev := 0
	for _, m := range matches {
		out = append(out, string(buf[prev:m.Start]))
		prev = m.End
	}
	if prev < len(buf) {
		out = append(out, string(buf[prev:]))
	}
	return out
}
