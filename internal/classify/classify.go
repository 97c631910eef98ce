// Package classify implements the Encoding Classifier (spec.md §4.1): the
// single place a call decides, once, which execution mode every element
// will be processed under.
package classify

import (
	"github.com/rcore/textmatch/internal/warn"
	"github.com/rcore/textmatch/textvec"
)

// Mode is the execution-time encoding choice spec.md §3 calls Execution Mode.
type Mode int

const (
	Bytes Mode = iota
	Ascii
	Utf8
	Wide
)

func (m Mode) String() string {
	switch m {
	case Bytes:
		return "bytes"
	case Ascii:
		return "ascii"
	case Utf8:
		return "UTF-8"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// Locale models the handful of locale facts spec.md §4.1 branches on. The
// zero value is the common modern default: a UTF-8, single-byte-safe
// locale. Hosts that need the R-style "current locale is a non-UTF-8
// multibyte locale" behavior set the fields explicitly.
type Locale struct {
	// MultibyteEncoding is true when the active locale's native encoding is
	// a non-UTF-8 multibyte encoding (e.g. Shift-JIS, Big5).
	MultibyteEncoding bool
	// NonLatin1 is true when the active locale is not Latin-1 compatible,
	// so a Latin-1-tagged element must be up-converted to UTF-8 to be safe.
	NonLatin1 bool
}

// Flags are the user-supplied dialect/behavior flags every operation
// accepts.
type Flags struct {
	UseBytes   bool
	Fixed      bool
	Perl       bool
	IgnoreCase bool
}

// Classify implements spec.md §4.1's short-circuit algorithm. It mutates
// flags in place when an incompatible combination forces one of them off,
// recording a warning each time (spec.md §4.1 step 1), and returns the
// Mode every element of the call will be normalized into.
func Classify(pattern textvec.Element, replacement *textvec.Element, x *textvec.Vector, flags *Flags, loc Locale, sink *warn.Sink) Mode {
	if flags.Fixed && flags.Perl {
		sink.Warn(warn.FlagCleared, -1, "argument 'perl = TRUE' ignored for fixed = TRUE")
		flags.Perl = false
	}
	if flags.Fixed && flags.IgnoreCase {
		sink.Warn(warn.FlagCleared, -1, "argument 'ignore.case = TRUE' ignored for fixed = TRUE")
		flags.IgnoreCase = false
	}

	if flags.UseBytes {
		return Bytes
	}

	if isPureASCII(pattern) && (replacement == nil || isPureASCII(*replacement)) && allASCII(x) {
		return Bytes
	}

	if pattern.IsBytesTagged() || anyBytesTagged(x) || (replacement != nil && replacement.IsBytesTagged()) {
		return Bytes
	}

	// A NUL byte in a non-byte-tagged element can't be safely reinterpreted
	// under any text encoding (SPEC_FULL.md §8's useBytes auto-detection
	// supplement); force Bytes mode rather than risk truncating at the NUL
	// the way a C-string-oriented engine would.
	if containsNUL(pattern) || (replacement != nil && containsNUL(*replacement)) || anyContainsNUL(x) {
		return Bytes
	}

	mode := Bytes
	if (flags.Perl && loc.MultibyteEncoding) || anyUTF8Tagged(x) || pattern.Encoding() == textvec.Utf8 ||
		(loc.NonLatin1 && anyLatin1Tagged(x)) {
		mode = Utf8
	}

	if !flags.Fixed && !flags.Perl && loc.MultibyteEncoding && mode != Utf8 {
		mode = Wide
	}

	return mode
}

func isPureASCII(e textvec.Element) bool {
	if e.IsMissing() {
		return true
	}
	for _, b := range e.Bytes() {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

func allASCII(x *textvec.Vector) bool {
	for i := 0; i < x.Len(); i++ {
		if !isPureASCII(x.At(i)) {
			return false
		}
	}
	return true
}

func anyBytesTagged(x *textvec.Vector) bool {
	for i := 0; i < x.Len(); i++ {
		if x.At(i).IsBytesTagged() {
			return true
		}
	}
	return false
}

func anyUTF8Tagged(x *textvec.Vector) bool {
	for i := 0; i < x.Len(); i++ {
		if x.At(i).Encoding() == textvec.Utf8 {
			return true
		}
	}
	return false
}

func anyLatin1Tagged(x *textvec.Vector) bool {
	for i := 0; i < x.Len(); i++ {
		if x.At(i).Encoding() == textvec.Latin1 {
			return true
		}
	}
	return false
}

func containsNUL(e textvec.Element) bool {
	if e.IsMissing() {
		return false
	}
	for _, b := range e.Bytes() {
		if b == 0 {
			return true
		}
	}
	return false
}

func anyContainsNUL(x *textvec.Vector) bool {
	for i := 0; i < x.Len(); i++ {
		if containsNUL(x.At(i)) {
			return true
		}
	}
	return false
}
