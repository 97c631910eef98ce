// Package posmap implements the Position Mapper (spec.md §4.6): conversion
// of the byte offsets engines return into the character offsets every
// user-visible index must be reported in, except when the call is running
// in byte mode.
package posmap

import (
	"unicode/utf8"

	"github.com/rcore/textmatch/internal/classify"
)

// BytesToChars counts UTF-8 lead bytes in buffer[:byteOffset], giving the
// 0-based character offset corresponding to byteOffset. Utf8 and Wide mode
// both perform this count, since in Wide mode the engine also matches
// against the element's UTF-8 bytes and reports byte offsets; for
// Bytes/Ascii mode the mapping is the identity.
func BytesToChars(buffer []byte, byteOffset int, mode classify.Mode) int {
	switch mode {
	case classify.Utf8, classify.Wide:
		if byteOffset > len(buffer) {
			byteOffset = len(buffer)
		}
		n := 0
		for i := 0; i < byteOffset; {
			_, size := utf8.DecodeRune(buffer[i:])
			if size == 0 {
				size = 1
			}
			i += size
			n++
		}
		return n
	default:
		return byteOffset
	}
}

// IndexType reports the attribute spec.md §4.10's Result Assembler attaches
// alongside every position.
func IndexType(mode classify.Mode) string {
	if mode == classify.Bytes {
		return "bytes"
	}
	return "chars"
}

// UseBytes reports the useBytes attribute spec.md §4.10 attaches.
func UseBytes(mode classify.Mode) bool {
	return mode == classify.Bytes
}
