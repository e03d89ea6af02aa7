package quiz

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Fixed decoy tables for the choice-based question kinds.
var (
	mcqDecoys   = []string{"Unknown", "Not mentioned", "Different concept"}
	blankDecoys = []string{"Nothing", "Something", "Anything"}

	// spareDecoys replace a fixed decoy that collides with the chosen answer
	// word, so the correct option stays unique and index lookup unambiguous.
	spareDecoys = []string{"Unrelated term", "None of these", "Opposite idea"}
)

// blankMarker replaces the removed word in fill-in-the-blank questions.
const blankMarker = "_____"

// Generator synthesizes questions from text chunks. All randomness flows
// through the one injected source, so a seeded Generator is fully
// deterministic. A Generator is intended for a single generation call and is
// not safe for concurrent use.
type Generator struct {
	rng       *rand.Rand
	chunkSize int
}

// NewGenerator returns a Generator with an OS-seeded random source.
func NewGenerator(chunkSize int) *Generator {
	var seed [16]byte
	crand.Read(seed[:])
	rng := rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
	return NewSeededGenerator(chunkSize, rng)
}

// NewSeededGenerator returns a Generator driven by the given source.
func NewSeededGenerator(chunkSize int, rng *rand.Rand) *Generator {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Generator{rng: rng, chunkSize: chunkSize}
}

// multipleChoice builds an MCQ from the chunk's first sentence: a random
// interior word becomes the answer key, padded with fixed decoys.
// Returns nil if the chunk does not qualify.
func (g *Generator) multipleChoice(chunk string, includeExplanations bool) *Question {
	sentences := strings.Split(chunk, ". ")
	if len(sentences) < 2 {
		return nil
	}
	sentence := sentences[0]
	words := strings.Fields(sentence)
	if len(words) < 5 {
		return nil
	}

	key := words[1+g.rng.IntN(len(words)-2)]

	q := &Question{
		Type:          TypeMultipleChoice,
		Question:      fmt.Sprintf("Which word best relates to '%s' in the context: %s...?", key, prefix(sentence, 100)),
		Options:       g.buildOptions(key, mcqDecoys),
		CorrectAnswer: key,
	}
	if includeExplanations {
		q.Explanation = prefix(sentence, 150)
	}
	return q
}

// trueFalse emits the first sentence verbatim as a true statement, or with a
// literal "NOT " prepended to its first word as a false one. The negation is
// a known-crude heuristic; quiz content correctness is not a contract here.
func (g *Generator) trueFalse(chunk string, includeExplanations bool) *Question {
	sentence := strings.Split(chunk, ". ")[0]
	if sentence == "" {
		return nil
	}

	answer := "true"
	statement := sentence
	if g.rng.IntN(2) == 0 {
		answer = "false"
		words := strings.Fields(sentence)
		if len(words) > 3 {
			words[0] = "NOT " + words[0]
			statement = strings.Join(words, " ")
		}
	}

	q := &Question{
		Type:          TypeTrueFalse,
		Question:      "True or False: " + statement,
		CorrectAnswer: answer,
	}
	if includeExplanations {
		q.Explanation = prefix(sentence, 150)
	}
	return q
}

// shortAnswer picks a random word longer than 4 characters from the first
// sentence as the expected term.
func (g *Generator) shortAnswer(chunk string, includeExplanations bool) *Question {
	sentence := strings.Split(chunk, ". ")[0]

	var candidates []string
	for _, w := range strings.Fields(sentence) {
		if len(w) > 4 {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	answer := candidates[g.rng.IntN(len(candidates))]

	q := &Question{
		Type:          TypeShortAnswer,
		Question:      fmt.Sprintf("What is a key term mentioned in: '%s...'?", prefix(sentence, 80)),
		CorrectAnswer: answer,
	}
	if includeExplanations {
		q.Explanation = prefix(sentence, 150)
	}
	return q
}

// fillInTheBlank blanks out a random interior word of the first sentence and
// offers it among fixed decoys.
func (g *Generator) fillInTheBlank(chunk string, includeExplanations bool) *Question {
	sentence := strings.Split(chunk, ". ")[0]
	words := strings.Fields(sentence)
	if len(words) < 5 {
		return nil
	}

	idx := 1 + g.rng.IntN(len(words)-2)
	blank := words[idx]

	display := make([]string, len(words))
	copy(display, words)
	display[idx] = blankMarker

	q := &Question{
		Type:          TypeFillInTheBlank,
		Question:      strings.Join(display, " "),
		Options:       g.buildOptions(blank, blankDecoys),
		CorrectAnswer: blank,
	}
	if includeExplanations {
		q.Explanation = prefix(sentence, 150)
	}
	return q
}

// buildOptions assembles the answer plus three decoys, swapping in spares for
// any decoy that matches the answer, then shuffles.
func (g *Generator) buildOptions(answer string, decoys []string) []string {
	options := make([]string, 0, len(decoys)+1)
	options = append(options, answer)

	spare := 0
	for _, d := range decoys {
		if strings.EqualFold(d, answer) && spare < len(spareDecoys) {
			d = spareDecoys[spare]
			spare++
		}
		options = append(options, d)
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
