package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "The Show", "The Show"},
		{"illegal chars", `What/If: Part* One?`, "What-If- Part- One-"},
		{"trailing dots", "Finale...", "Finale"},
		{"trailing dot space runs", "Odd one . . ", "Odd one"},
		{"surrounding space", "  padded  ", "padded"},
		{"empty", "", FallbackName},
		{"only illegal", `???`, "---"},
		{"only dots and spaces", " .. . ", FallbackName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeName(tc.input); got != tc.want {
				t.Fatalf("SanitizeName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"The Show", `a<b>c:d"e/f\g|h?i*j`, "trailing. ", "", "  ", "x..", FallbackName,
	}
	for _, in := range inputs {
		once := SanitizeName(in)
		twice := SanitizeName(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizeNameNeverEmptyOrTrailingJunk(t *testing.T) {
	inputs := []string{"", ".", " ", "...", "a.", "a ", `\`, "ok"}
	for _, in := range inputs {
		got := SanitizeName(in)
		if got == "" {
			t.Fatalf("empty result for %q", in)
		}
		if strings.HasSuffix(got, ".") || strings.HasSuffix(got, " ") {
			t.Fatalf("trailing junk in %q for input %q", got, in)
		}
	}
}

func TestDeriveTitle(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"/media/the.quiet.show.mkv", "The Quiet Show"},
		{"/media/some_movie-2021.mp4", "Some Movie 2021"},
		{"", "Unknown Media"},
		{"/media/####.mkv", "Unknown Media"},
	}
	for _, tc := range cases {
		if got := DeriveTitle(tc.input); got != tc.want {
			t.Fatalf("DeriveTitle(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
