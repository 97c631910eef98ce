package literalmatch

import (
	"testing"

	"github.com/rcore/textmatch/internal/classify"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name         string
		hay, needle  string
		from         int
		want         int
	}{
		{"present at start", "hello world", "hello", 0, 0},
		{"present mid-string", "hello world", "world", 0, 6},
		{"absent", "hello world", "xyz", 0, -1},
		{"from skips earlier match", "aXaXa", "a", 1, 2},
		{"empty needle matches at from", "hello", "", 3, 3},
		{"from past end", "hi", "h", 5, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find([]byte(tt.hay), []byte(tt.needle), tt.from)
			if got != tt.want {
				t.Errorf("Find(%q, %q, %d) = %d, want %d", tt.hay, tt.needle, tt.from, got, tt.want)
			}
		})
	}
}

func TestNextCandidate(t *testing.T) {
	hay := []byte("héllo")
	// 'h' is ASCII (1 byte), then 'é' is 2 bytes in UTF-8.
	next := NextCandidate(hay, 1, classify.Utf8)
	if next != 3 {
		t.Errorf("NextCandidate at UTF-8 lead byte = %d, want 3 (skip the 2-byte rune)", next)
	}
	if got := NextCandidate(hay, 1, classify.Bytes); got != 2 {
		t.Errorf("NextCandidate in Bytes mode = %d, want 2", got)
	}
	if got := NextCandidate(hay, len(hay), classify.Utf8); got != len(hay)+1 {
		t.Errorf("NextCandidate at end = %d, want %d", got, len(hay)+1)
	}
}
