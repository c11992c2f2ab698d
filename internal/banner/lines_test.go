package banner

import "testing"

func TestSplitLinesRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		input string
		lines int
	}{
		{"empty", "", 0},
		{"single", "a", 1},
		{"terminated", "a\n", 1},
		{"twoTerminated", "a\nb\n", 2},
		{"crlf", "a\r\nb\r\n", 2},
		{"unterminatedTail", "a\nb", 2},
		{"loneCR", "a\rb\n", 2},
		{"crOnly", "a\rb\r", 2},
		{"trailingCR", "a\r", 1},
		{"crThenCRLF", "a\r\r\nb", 3},
		{"lfCR", "a\n\rb", 3},
		{"blankLines", "\n\n\n", 3},
		{"crlfBlank", "\r\n\r\n", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sl := splitLines([]byte(tc.input))
			if sl.Len() != tc.lines {
				t.Fatalf("splitLines(%q) has %d lines, want %d", tc.input, sl.Len(), tc.lines)
			}
			if got := string(sl.Bytes()); got != tc.input {
				t.Fatalf("round trip = %q, want %q", got, tc.input)
			}
		})
	}
}

func TestSplitLinesStripsTerminators(t *testing.T) {
	sl := splitLines([]byte("one\r\ntwo\nthree\rfour"))
	want := []string{"one", "two", "three", "four"}
	for i, w := range want {
		if sl.text[i] != w {
			t.Fatalf("line %d = %q, want %q", i+1, sl.text[i], w)
		}
	}
}

func TestSplitLinesKeepsTerminators(t *testing.T) {
	sl := splitLines([]byte("a\rb\r\nc\nd"))
	want := []string{"\r", "\r\n", "\n", ""}
	if sl.Len() != len(want) {
		t.Fatalf("got %d lines, want %d", sl.Len(), len(want))
	}
	for i, w := range want {
		if sl.eol[i] != w {
			t.Fatalf("eol %d = %q, want %q", i+1, sl.eol[i], w)
		}
	}
}
