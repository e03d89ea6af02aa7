package quiz

import "strings"

// DefaultChunkSize is the character threshold at which a chunk is closed.
const DefaultChunkSize = 500

// Split cuts normalized text into chunks of roughly chunkSize characters.
// Text is split on the literal ". " delimiter and sentences accumulate
// greedily, each with its ". " suffix restored, until adding the next one
// would reach the threshold. This is greedy bin-packing by character count,
// not by token or semantic boundary — a deliberate simplification.
//
// Input with no delimiter yields a single chunk; empty input yields none.
func Split(text string, chunkSize int) []string {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	sentences := strings.Split(text, ". ")

	var chunks []string
	var current strings.Builder

	for _, sentence := range sentences {
		if current.Len()+len(sentence) >= chunkSize && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(sentence)
		current.WriteString(". ")
	}

	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	return chunks
}
