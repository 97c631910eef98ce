// Package result implements the Result Assembler (spec.md §4.10): packaging
// per-element match data into the attribute-bearing shapes every top-level
// operation returns.
package result

import (
	"github.com/rcore/textmatch/internal/classify"
	"github.com/rcore/textmatch/internal/driver"
	"github.com/rcore/textmatch/internal/posmap"
)

// Position is one reported match location: a 1-based start offset (spec.md
// §6's "all user-visible positions are 1-based" wire invariant), its
// length, and, when the underlying pattern has capture groups, the start
// and length of each group (-1/-1 for a group that didn't participate).
type Position struct {
	Start  int
	Length int

	CaptureStart  []int
	CaptureLength []int
	CaptureNames  []string
}

// NoMatch is the sentinel Position for "no match" (spec.md §6: sentinel -1).
var NoMatch = Position{Start: -1, Length: -1}

// Attributes are the call-level facts the Result Assembler attaches
// alongside every position, per spec.md §4.10.
type Attributes struct {
	IndexType string // "bytes" or "chars"
	UseBytes  bool
	Names     []string // the text vector's own names, preserved verbatim
}

// NewAttributes derives the attribute set for one call from its execution
// mode and the original vector's names.
func NewAttributes(mode classify.Mode, names []string) Attributes {
	return Attributes{
		IndexType: posmap.IndexType(mode),
		UseBytes:  posmap.UseBytes(mode),
		Names:     names,
	}
}

// One converts a single driver.Match (byte offsets, 0-based, half-open)
// into a wire Position (char-mapped per mode, 1-based, closed length),
// with its groups' start/length parallel arrays.
func One(buf []byte, m driver.Match, mode classify.Mode, names []string) Position {
	start := posmap.BytesToChars(buf, m.Start, mode) + 1
	length := posmap.BytesToChars(buf, m.End, mode) - posmap.BytesToChars(buf, m.Start, mode)

	p := Position{Start: start, Length: length}
	if len(m.Groups) > 1 {
		p.CaptureStart = make([]int, len(m.Groups)-1)
		p.CaptureLength = make([]int, len(m.Groups)-1)
		for i, g := range m.Groups[1:] {
			if g == nil {
				p.CaptureStart[i] = -1
				p.CaptureLength[i] = -1
				continue
			}
			cs := posmap.BytesToChars(buf, g[0], mode)
			ce := posmap.BytesToChars(buf, g[1], mode)
			p.CaptureStart[i] = cs + 1
			p.CaptureLength[i] = ce - cs
		}
		if len(names) > 1 {
			p.CaptureNames = names[1:]
		}
	}
	return p
}

// All converts every driver.Match in ms to wire Positions, in order.
func All(buf []byte, ms []driver.Match, mode classify.Mode, names []string) []Position {
	out := make([]Position, len(ms))
	for i, m := range ms {
		out[i] = One(buf, m, mode, names)
	}
	return out
}
