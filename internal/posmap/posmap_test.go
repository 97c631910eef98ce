package posmap

import (
	"testing"

	"github.com/rcore/textmatch/internal/classify"
)

func TestBytesToCharsUTF8(t *testing.T) {
	buf := []byte("héllo") // h=1 byte, é=2 bytes, llo=3 bytes
	tests := []struct {
		byteOffset int
		want       int
	}{
		{0, 0},
		{1, 1},
		{3, 2},
		{len(buf), 5},
	}
	for _, tt := range tests {
		got := BytesToChars(buf, tt.byteOffset, classify.Utf8)
		if got != tt.want {
			t.Errorf("BytesToChars(%d) = %d, want %d", tt.byteOffset, got, tt.want)
		}
	}
}

func TestBytesToCharsIdentityOutsideUTF8(t *testing.T) {
	buf := []byte("héllo")
	if got := BytesToChars(buf, 3, classify.Bytes); got != 3 {
		t.Errorf("BytesToChars in Bytes mode = %d, want identity 3", got)
	}
}

func TestIndexTypeAndUseBytes(t *testing.T) {
	if IndexType(classify.Bytes) != "bytes" {
		t.Error(`IndexType(Bytes) should be "bytes"`)
	}
	if IndexType(classify.Utf8) != "chars" {
		t.Error(`IndexType(Utf8) should be "chars"`)
	}
	if !UseBytes(classify.Bytes) {
		t.Error("UseBytes(Bytes) should be true")
	}
	if UseBytes(classify.Utf8) {
		t.Error("UseBytes(Utf8) should be false")
	}
}
