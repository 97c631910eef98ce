// Package textvec defines the narrow text-vector contract the pattern-
// matching core consumes from its host: an immutable sequence of text
// elements, each carrying an encoding tag and a missing flag.
//
// The runtime that actually owns and allocates these vectors lives outside
// this module's scope; textvec only pins down the shape every operation in
// the core agrees on, plus a minimal concrete implementation so the core is
// usable standalone.
package textvec

// Encoding is the per-element encoding tag.
type Encoding int

const (
	// Unknown means the element's encoding is whatever the active locale
	// says it is.
	Unknown Encoding = iota
	// Latin1 marks an element as Latin-1 (ISO-8859-1) encoded.
	Latin1
	// Utf8 marks an element as UTF-8 encoded.
	Utf8
	// Bytes marks an element whose bytes must never be reinterpreted
	// under any encoding.
	Bytes
	// Ascii marks an element known to contain only 7-bit ASCII bytes.
	Ascii
)

func (e Encoding) String() string {
	switch e {
	case Latin1:
		return "latin1"
	case Utf8:
		return "UTF-8"
	case Bytes:
		return "bytes"
	case Ascii:
		return "ascii"
	default:
		return "unknown"
	}
}

// Element is a single immutable text value: a byte sequence with an
// encoding tag, or the distinguished Missing value.
type Element struct {
	data     []byte
	encoding Encoding
	missing  bool
}

// NewElement builds a present Element from raw bytes and an encoding tag.
func NewElement(data []byte, enc Encoding) Element {
	return Element{data: data, encoding: enc}
}

// NewString builds a present, UTF-8 Element from a Go string.
func NewString(s string) Element {
	return Element{data: []byte(s), encoding: Utf8}
}

// Missing is the distinguished missing-value Element.
var Missing = Element{missing: true}

// IsMissing reports whether e is the distinguished Missing value.
func (e Element) IsMissing() bool { return e.missing }

// Bytes returns the element's raw bytes. Missing elements return nil.
func (e Element) Bytes() []byte { return e.data }

// String returns the element's bytes interpreted as a Go string. Missing
// elements return "".
func (e Element) String() string {
	if e.missing {
		return ""
	}
	return string(e.data)
}

// Len returns the byte length of the element. Missing elements have
// length 0.
func (e Element) Len() int { return len(e.data) }

// Encoding returns the element's encoding tag.
func (e Element) Encoding() Encoding { return e.encoding }

// IsBytesTagged reports whether this element forces byte-mode execution.
func (e Element) IsBytesTagged() bool { return e.encoding == Bytes }

// Vector is an ordered sequence of Elements with an optional parallel
// Names slice, preserved on output by every operation.
type Vector struct {
	Elements []Element
	Names    []string
}

// NewVector builds a Vector from a slice of Go strings, each tagged UTF-8.
func NewVector(ss ...string) *Vector {
	els := make([]Element, len(ss))
	for i, s := range ss {
		els[i] = NewString(s)
	}
	return &Vector{Elements: els}
}

// Len returns the number of elements in the vector.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Elements)
}

// At returns the element at index i.
func (v *Vector) At(i int) Element { return v.Elements[i] }

// WithNames attaches a names attribute and returns the receiver for chaining.
func (v *Vector) WithNames(names []string) *Vector {
	v.Names = names
	return v
}
