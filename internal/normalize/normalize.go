// Package normalize implements the Input Normalizer (spec.md §4.2): per
// element, it produces the canonical buffer the selected dialect's engine
// expects and flags encoding failures without aborting the whole call.
package normalize

import (
	"unicode/utf8"

	"github.com/rcore/textmatch/internal/alloc"
	"github.com/rcore/textmatch/internal/classify"
	"github.com/rcore/textmatch/internal/warn"
	"github.com/rcore/textmatch/textvec"
)

// Buffer is the normalized form of one element, ready to hand to a
// Compiled Pattern's driver.
type Buffer struct {
	// Bytes is the canonical byte form: raw bytes in Bytes/Ascii mode,
	// validated UTF-8 bytes in Utf8 and Wide mode (the coregex engine
	// only ever matches against bytes; Wide's Runes exist for character
	// counting, not a separate matching representation).
	Bytes []byte
	// Runes is the wide-character buffer used in Wide mode, one entry per
	// locale character (modeled here as a Unicode code point, since this
	// module has no access to a real non-UTF-8 multibyte locale table).
	Runes []rune
	// Missing mirrors the source element's missing flag.
	Missing bool
	// BadInput is true when the element's bytes are not valid under the
	// selected mode; Bytes/Runes are unset and the caller should treat
	// this element as producing no match / Missing.
	BadInput bool
}

// Normalize produces the canonical Buffer for element e under mode. scope
// is used for any scratch transcoding space; the returned Buffer's slices
// may alias scope-owned memory and are only valid until scope.Release().
// elementIndex is used to attribute a warning when validation fails.
func Normalize(e textvec.Element, mode classify.Mode, scope *alloc.Scope, elementIndex int, sink *warn.Sink) Buffer {
	if e.IsMissing() {
		return Buffer{Missing: true}
	}

	switch mode {
	case classify.Bytes, classify.Ascii:
		return Buffer{Bytes: e.Bytes()}

	case classify.Utf8:
		raw := e.Bytes()
		if e.Encoding() == textvec.Latin1 {
			return Buffer{Bytes: latin1ToUTF8(raw, scope)}
		}
		if !utf8.Valid(raw) {
			sink.Warn(warn.BadInput, elementIndex, "invalid UTF-8 byte sequence detected; treating as bad input")
			return Buffer{BadInput: true}
		}
		return Buffer{Bytes: raw}

	case classify.Wide:
		raw := e.Bytes()
		if !utf8.Valid(raw) {
			sink.Warn(warn.BadInput, elementIndex, "invalid multibyte character sequence detected; treating as bad input")
			return Buffer{BadInput: true}
		}
		runes := make([]rune, 0, utf8.RuneCount(raw))
		for _, r := range string(raw) {
			runes = append(runes, r)
		}
		return Buffer{Bytes: raw, Runes: runes}

	default:
		return Buffer{Bytes: e.Bytes()}
	}
}

// latin1ToUTF8 up-converts a Latin-1 byte string to UTF-8, scratch-backed
// by scope.
func latin1ToUTF8(raw []byte, scope *alloc.Scope) []byte {
	buf := scope.Get(len(raw) * 2)
	for _, b := range raw {
		buf = utf8.AppendRune(buf, rune(b))
	}
	return buf
}
