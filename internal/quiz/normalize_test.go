package quiz

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses whitespace", "too   many\n\n spaces\there", "too many spaces here"},
		{"strips http url", "see http://example.com/page for details", "see for details"},
		{"strips www url", "visit www.example.org today", "visit today"},
		{"empty input", "", ""},
		{"whitespace only", " \n\t ", ""},
		{"plain text untouched", "nothing to change", "nothing to change"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanDisplay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips symbols", "cost is $5 & rising*", "cost is 5 rising"},
		{"keeps punctuation", `keeps: this, (and) "that" - ok?!`, `keeps: this, (and) "that" - ok?!`},
		{"keeps blank marker", "fill _____ in", "fill _____ in"},
		{"keeps accents", "café naïve", "café naïve"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanDisplay(tc.input); got != tc.want {
				t.Errorf("CleanDisplay(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 200); got != "short" {
		t.Errorf("expected short text unchanged, got %q", got)
	}

	long := strings.Repeat("alpha beta ", 30)
	got := Truncate(long, 100)
	if len(got) > 103 {
		t.Errorf("truncated text too long: %d chars", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if strings.Contains(strings.TrimSuffix(got, "..."), "  ") {
		t.Errorf("unexpected double space in %q", got)
	}
}
