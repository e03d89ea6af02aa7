package quiz

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var urlPattern = regexp.MustCompile(`http\S+|www\S+`)

// Normalize prepares raw extracted text for chunking: URL-like tokens are
// removed, whitespace runs collapse to single spaces, leading/trailing
// whitespace is stripped. Always returns a string, possibly empty.
func Normalize(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// \p{L}\p{N}_ rather than \w: Go's \w is ASCII-only and would mangle
// accented or non-Latin source text.
var displayPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?\-:;()"]`)

// CleanDisplay is the stricter pass used before display: characters outside
// word characters and basic punctuation are dropped, then whitespace collapses.
func CleanDisplay(text string) string {
	text = displayPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// Truncate shortens text to at most max bytes, backing up to a word boundary
// and appending "...". Text already within the limit is returned unchanged.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := prefix(text, max)
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// prefix returns the first n bytes of s without splitting a UTF-8 sequence.
func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
