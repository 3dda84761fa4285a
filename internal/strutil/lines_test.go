package strutil

import (
	"reflect"
	"testing"
)

func TestFastSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{"a,b,,c,", []string{"a", "b", "", "c"}},
		{",a", []string{"", "a"}},
		{"a,,", []string{"a", ""}},
		{"abc", []string{"abc"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		if got := FastSplit(tt.in, ','); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FastSplit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEllipsize(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"héllo wörld", 8, "héllo..."},
		{"abcdef", 2, "ab"},
		{"abcdef", -1, ""},
	}

	for _, tt := range tests {
		got := Ellipsize(tt.in, tt.maxLen)
		if got != tt.want {
			t.Errorf("Ellipsize(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	text := "first\r\nsecond\n\nfourth\n"

	got := SplitLines(text, false)
	want := []string{"first", "second", "", "fourth"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines(keep empty) = %q, want %q", got, want)
	}

	got = SplitLines("\n"+text, true)
	want = []string{"first", "second", "fourth"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines(skip empty) = %q, want %q", got, want)
	}
}

func TestFindLinesContaining(t *testing.T) {
	text := "error: disk full\ninfo: ok\n\nerror: timeout"
	got := FindLinesContaining(text, "error")
	want := []string{"error: disk full", "error: timeout"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindLinesContaining = %q, want %q", got, want)
	}

	if got := FindLinesContaining(text, "missing"); len(got) != 0 {
		t.Errorf("expected no matches, got %q", got)
	}
}

func TestConcatLines(t *testing.T) {
	if got := ConcatLines([]string{"a", "b", "c"}); got != "a\nb\nc" {
		t.Errorf("ConcatLines = %q", got)
	}
	if got := ConcatLines(nil); got != "" {
		t.Errorf("ConcatLines(nil) = %q, want empty", got)
	}
}

func TestJoinOnComma(t *testing.T) {
	if got := JoinOnComma([]int{1, 22, 333}); got != "1,22,333" {
		t.Errorf("JoinOnComma(ints) = %q", got)
	}
	if got := JoinOnComma([]string{"a", "", "c"}); got != "a,,c" {
		t.Errorf("JoinOnComma(strings) = %q", got)
	}
	if got := JoinOnComma[string](nil); got != "" {
		t.Errorf("JoinOnComma(nil) = %q, want empty", got)
	}
}
