package quiz

import "strings"

// stopwords excluded from key-phrase extraction. Immutable configuration,
// not shared mutable state.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "up": true, "about": true,
	"into": true, "through": true, "during": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "can": true, "it": true, "its": true,
	"that": true, "this": true, "these": true, "those": true, "as": true,
	"if": true, "which": true,
}

// KeyPhrases returns up to n words longer than 4 characters that are not
// stopwords, deduplicated case-insensitively in order of first appearance.
// Longer words standing in for key terms is a heuristic, nothing more.
func KeyPhrases(text string, n int) []string {
	seen := make(map[string]bool)
	var phrases []string
	for _, word := range strings.Fields(text) {
		if len(word) <= 4 || stopwords[strings.ToLower(word)] {
			continue
		}
		lower := strings.ToLower(word)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		phrases = append(phrases, word)
		if len(phrases) == n {
			break
		}
	}
	return phrases
}
