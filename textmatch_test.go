package textmatch

import (
	"context"
	"reflect"
	"testing"

	"github.com/rcore/textmatch/textvec"
)

func TestSplitFixed(t *testing.T) {
	x := textvec.NewVector("a,b,,c", "")
	tok := textvec.NewVector(",")
	out, warnings := Split(context.Background(), x, tok, SplitOptions{CommonOptions{Fixed: true}})
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	got := stringsOf(out[0])
	want := []string{"a", "b", "", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split(\"a,b,,c\") = %v, want %v", got, want)
	}
	if stringsOf(out[1])[0] != "" {
		t.Errorf("Split(\"\") = %v, want [\"\"]", stringsOf(out[1]))
	}
}

func TestGsubPerlBackreferences(t *testing.T) {
	x := textvec.NewVector("hello world")
	out, _ := Gsub(context.Background(), `(\w+) (\w+)`, `\2 \1`, x, MatchOptions{CommonOptions{Perl: true}})
	if out.At(0).String() != "world hello" {
		t.Errorf("Gsub() = %q, want %q", out.At(0).String(), "world hello")
	}
}

func TestRegexprOnePerElement(t *testing.T) {
	x := textvec.NewVector("x1", "no match here", "xx")
	out, _ := Regexpr(context.Background(), "^x", x, MatchOptions{CommonOptions{Perl: true}})
	if len(out) != 3 {
		t.Fatalf("Regexpr() = %+v, want one MatchIndex per element", out)
	}
	if out[0].Start != 1 || out[0].Length != 1 {
		t.Errorf("element 0 = %+v, want Start=1 Length=1", out[0])
	}
	if out[1].Start != -1 {
		t.Errorf("element 1 = %+v, want no-match sentinel", out[1])
	}
	if out[2].Start != 1 || out[2].Length != 1 {
		t.Errorf("element 2 = %+v, want Start=1 Length=1", out[2])
	}
}

func TestGregexprPositionsAndLengths(t *testing.T) {
	x := textvec.NewVector("baaabcaad")
	out, _ := Gregexpr(context.Background(), "a+", x, MatchOptions{CommonOptions{Perl: true}})
	if len(out) != 1 || len(out[0]) != 2 {
		t.Fatalf("Gregexpr() = %+v, want one element with 2 matches", out)
	}
	if out[0][0].Start != 2 || out[0][0].Length != 3 {
		t.Errorf("match 0 = %+v, want Start=2 Length=3", out[0][0])
	}
	if out[0][1].Start != 7 || out[0][1].Length != 2 {
		t.Errorf("match 1 = %+v, want Start=7 Length=2", out[0][1])
	}
}

func TestGrepValue(t *testing.T) {
	x := textvec.NewVector("x1", "y", "xx")
	res, _ := Grep(context.Background(), "^x", x, GrepOptions{CommonOptions: CommonOptions{Perl: true}, Value: true})
	want := []string{"x1", "xx"}
	if !reflect.DeepEqual(res.Values, want) {
		t.Errorf("Grep(value=true) = %v, want %v", res.Values, want)
	}
}

func TestGsubCaseFold(t *testing.T) {
	x := textvec.NewVector("foo bar")
	out, _ := Gsub(context.Background(), `([a-z]+)`, `\U\1\E!`, x, MatchOptions{CommonOptions{Perl: true}})
	if out.At(0).String() != "FOO! BAR!" {
		t.Errorf("Gsub() = %q, want %q", out.At(0).String(), "FOO! BAR!")
	}
}

func TestGrepRawAll(t *testing.T) {
	pat := []byte{0x00, 0x01}
	subject := []byte{0xff, 0x00, 0x01, 0x00, 0x01, 0x02}
	res, warnings := GrepRaw(pat, subject, RawOptions{Fixed: true, All: true})
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	want := [][2]int{{2, 4}, {4, 6}}
	if !reflect.DeepEqual(res.Offsets, want) {
		t.Errorf("GrepRaw() = %v, want %v", res.Offsets, want)
	}
}

func TestMissingPropagation(t *testing.T) {
	x := &textvec.Vector{Elements: []textvec.Element{textvec.Missing, textvec.NewString("abc")}}

	grepl, _ := Grepl(context.Background(), "a", x, MatchOptions{})
	if grepl[0].Valid {
		t.Error("Grepl on Missing should report Valid=false")
	}

	subOut, _ := Sub(context.Background(), "a", "X", x, MatchOptions{})
	if !subOut.At(0).IsMissing() {
		t.Error("Sub on Missing element should propagate Missing")
	}

	regexOut, _ := Gregexpr(context.Background(), "a", x, MatchOptions{})
	if len(regexOut[0]) != 1 || regexOut[0][0].Start != -1 {
		t.Errorf("Gregexpr on Missing should report a single -1 sentinel, got %+v", regexOut[0])
	}
}

func TestPCREConfigShape(t *testing.T) {
	cfg := PCREConfig()
	for _, key := range []string{"UTF-8", "Unicode properties", "JIT", "stack"} {
		if _, ok := cfg[key]; !ok {
			t.Errorf("PCREConfig() missing key %q", key)
		}
	}
}

func stringsOf(v *textvec.Vector) []string {
	out := make([]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = v.At(i).String()
	}
	return out
}
