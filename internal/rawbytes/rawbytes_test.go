package rawbytes

import (
	"reflect"
	"testing"

	"github.com/rcore/textmatch/internal/classify"
	"github.com/rcore/textmatch/internal/compiler"
	"github.com/rcore/textmatch/internal/warn"
)

func TestSearchLiteralAll(t *testing.T) {
	pat, release, err := compiler.Compile([]byte{0x00, 0x01}, compiler.Literal, classify.Bytes, false, warn.NewSink())
	defer release()
	if err != nil {
		t.Fatal(err)
	}
	subject := []byte{0xff, 0x00, 0x01, 0x00, 0x01, 0x02}
	res, errs := Search(subject, pat, Options{All: true, Value: false}, warn.NewSink())
	for _, e := range errs {
		if e != nil {
			t.Fatalf("Search() error = %v", e)
		}
	}
	want := [][2]int{{1, 3}, {3, 5}}
	if !reflect.DeepEqual(res.Offsets, want) {
		t.Errorf("Offsets = %v, want %v", res.Offsets, want)
	}
}

func TestSearchFirstOnly(t *testing.T) {
	pat, release, err := compiler.Compile([]byte{0xaa}, compiler.Literal, classify.Bytes, false, warn.NewSink())
	defer release()
	if err != nil {
		t.Fatal(err)
	}
	subject := []byte{0xaa, 0xbb, 0xaa}
	res, _ := Search(subject, pat, Options{All: false}, warn.NewSink())
	if len(res.Offsets) != 1 || res.Offsets[0] != [2]int{0, 1} {
		t.Errorf("Offsets = %v, want one match at [0,1)", res.Offsets)
	}
}

func TestSearchInvertRequiresValue(t *testing.T) {
	pat, release, err := compiler.Compile([]byte{0x01}, compiler.Literal, classify.Bytes, false, warn.NewSink())
	defer release()
	if err != nil {
		t.Fatal(err)
	}
	sink := warn.NewSink()
	res, _ := Search([]byte{0x00, 0x01, 0x00}, pat, Options{Invert: true, Value: false, All: true}, sink)
	if len(sink.Warnings()) != 1 {
		t.Fatalf("expected a warning clearing invert, got %v", sink.Warnings())
	}
	want := [][2]int{{1, 2}}
	if !reflect.DeepEqual(res.Offsets, want) {
		t.Errorf("Offsets = %v, want %v (invert cleared)", res.Offsets, want)
	}
}

func TestSearchInvertComplement(t *testing.T) {
	pat, release, err := compiler.Compile([]byte{0x01}, compiler.Literal, classify.Bytes, false, warn.NewSink())
	defer release()
	if err != nil {
		t.Fatal(err)
	}
	subject := []byte{0x00, 0x01, 0x00, 0x00, 0x01}
	res, _ := Search(subject, pat, Options{Invert: true, Value: true, All: true}, warn.NewSink())
	want := [][2]int{{0, 1}, {2, 4}}
	if !reflect.DeepEqual(res.Offsets, want) {
		t.Errorf("Offsets = %v, want %v", res.Offsets, want)
	}
}
