package textvec

import "testing"

func TestNewStringAndMissing(t *testing.T) {
	e := NewString("hello")
	if e.IsMissing() {
		t.Fatal("NewString element should not be missing")
	}
	if e.String() != "hello" {
		t.Errorf("String() = %q, want %q", e.String(), "hello")
	}
	if e.Encoding() != Utf8 {
		t.Errorf("Encoding() = %v, want Utf8", e.Encoding())
	}

	if !Missing.IsMissing() {
		t.Fatal("Missing.IsMissing() should be true")
	}
	if Missing.String() != "" {
		t.Errorf("Missing.String() = %q, want empty", Missing.String())
	}
	if Missing.Len() != 0 {
		t.Errorf("Missing.Len() = %d, want 0", Missing.Len())
	}
}

func TestIsBytesTagged(t *testing.T) {
	e := NewElement([]byte{0xff, 0x00}, Bytes)
	if !e.IsBytesTagged() {
		t.Error("IsBytesTagged() should be true for Bytes-tagged element")
	}
	if NewString("ok").IsBytesTagged() {
		t.Error("IsBytesTagged() should be false for UTF-8 element")
	}
}

func TestVectorLenAndNames(t *testing.T) {
	v := NewVector("a", "b", "c")
	if v.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", v.Len())
	}
	var nilVec *Vector
	if nilVec.Len() != 0 {
		t.Errorf("nil Vector.Len() = %d, want 0", nilVec.Len())
	}

	v.WithNames([]string{"x", "y", "z"})
	if len(v.Names) != 3 || v.Names[1] != "y" {
		t.Errorf("WithNames did not attach names correctly: %v", v.Names)
	}
}
