package util

import (
	"strconv"
	"testing"
)

func TestNormalizeWhitespace(t *testing.T) {
	cases := map[string]string{
		"  New   Zealand ": "New Zealand",
		"\tSri\nLanka":     "Sri Lanka",
		"":                 "",
	}
	for in, want := range cases {
		if got := NormalizeWhitespace(in); got != want {
			t.Fatalf("NormalizeWhitespace(%q)=%q want %q", in, got, want)
		}
	}
}

func TestOrNone(t *testing.T) {
	if got := OrNone[int](nil, strconv.Itoa); got != "None" {
		t.Fatalf("nil: got %q", got)
	}
	v := 70
	if got := OrNone(&v, strconv.Itoa); got != "70" {
		t.Fatalf("set: got %q", got)
	}
}
