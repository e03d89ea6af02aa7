package quiz

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func seededGen(seed uint64) *Generator {
	return NewSeededGenerator(DefaultChunkSize, rand.New(rand.NewPCG(seed, 0)))
}

func countEqual(options []string, want string) int {
	n := 0
	for _, opt := range options {
		if opt == want {
			n++
		}
	}
	return n
}

const mcqChunk = "The quick brown fox jumps over the lazy dog. A second sentence follows here."

func TestMultipleChoice_AnswerPresentExactlyOnce(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		g := seededGen(seed)
		q := g.multipleChoice(mcqChunk, true)
		if q == nil {
			t.Fatalf("seed %d: expected a question", seed)
		}
		if q.Type != TypeMultipleChoice {
			t.Errorf("seed %d: expected type %q, got %q", seed, TypeMultipleChoice, q.Type)
		}
		if len(q.Options) != 4 {
			t.Errorf("seed %d: expected 4 options, got %d", seed, len(q.Options))
		}
		if n := countEqual(q.Options, q.CorrectAnswer); n != 1 {
			t.Errorf("seed %d: correct answer %q appears %d times in %v", seed, q.CorrectAnswer, n, q.Options)
		}
		// Answer key is an interior word of the first sentence.
		words := strings.Fields(strings.Split(mcqChunk, ". ")[0])
		if q.CorrectAnswer == words[0] || q.CorrectAnswer == words[len(words)-1] {
			t.Errorf("seed %d: answer %q must not be the first or last word", seed, q.CorrectAnswer)
		}
	}
}

func TestMultipleChoice_RejectsShortInput(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
	}{
		{"single sentence", "Only one sentence with plenty of words here."},
		{"too few words", "Too few words. Another sentence."},
	}
	g := seededGen(1)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if q := g.multipleChoice(tc.chunk, true); q != nil {
				t.Errorf("expected nil for %q, got %+v", tc.chunk, q)
			}
		})
	}
}

func TestMultipleChoice_DecoyCollision(t *testing.T) {
	// Every interior word matches a fixed decoy, so whichever key is picked
	// collides and the matching decoy must be replaced, not duplicated.
	chunk := "Alpha Unknown Unknown Unknown omega. Trailing sentence here."
	for seed := uint64(0); seed < 10; seed++ {
		g := seededGen(seed)
		q := g.multipleChoice(chunk, false)
		if q == nil {
			t.Fatalf("seed %d: expected a question", seed)
		}
		if q.CorrectAnswer != "Unknown" {
			t.Fatalf("seed %d: expected key %q, got %q", seed, "Unknown", q.CorrectAnswer)
		}
		if n := countEqual(q.Options, "Unknown"); n != 1 {
			t.Errorf("seed %d: %q appears %d times in %v", seed, "Unknown", n, q.Options)
		}
		if countEqual(q.Options, "Unrelated term") != 1 {
			t.Errorf("seed %d: expected spare decoy in %v", seed, q.Options)
		}
	}
}

func TestMultipleChoice_Explanation(t *testing.T) {
	g := seededGen(3)
	q := g.multipleChoice(mcqChunk, true)
	if q == nil {
		t.Fatal("expected a question")
	}
	sentence := strings.Split(mcqChunk, ". ")[0]
	if q.Explanation != sentence {
		t.Errorf("expected explanation %q, got %q", sentence, q.Explanation)
	}

	q = g.multipleChoice(mcqChunk, false)
	if q == nil {
		t.Fatal("expected a question")
	}
	if q.Explanation != "" {
		t.Errorf("expected no explanation, got %q", q.Explanation)
	}
}

func TestTrueFalse_AnswerIsBool(t *testing.T) {
	chunk := "Water boils at one hundred degrees celsius. Ice melts at zero."
	sentence := strings.Split(chunk, ". ")[0]

	sawTrue, sawFalse := false, false
	for seed := uint64(0); seed < 30; seed++ {
		g := seededGen(seed)
		q := g.trueFalse(chunk, false)
		if q == nil {
			t.Fatalf("seed %d: expected a question", seed)
		}
		switch q.CorrectAnswer {
		case "true":
			sawTrue = true
			if q.Question != "True or False: "+sentence {
				t.Errorf("seed %d: true statement altered: %q", seed, q.Question)
			}
		case "false":
			sawFalse = true
			if !strings.HasPrefix(q.Question, "True or False: NOT ") {
				t.Errorf("seed %d: false statement not negated: %q", seed, q.Question)
			}
		default:
			t.Errorf("seed %d: correct answer %q is not true/false", seed, q.CorrectAnswer)
		}
	}
	if !sawTrue || !sawFalse {
		t.Errorf("expected both outcomes across seeds, got true=%v false=%v", sawTrue, sawFalse)
	}
}

func TestTrueFalse_ShortSentenceNotNegated(t *testing.T) {
	// Sentences of 3 words or fewer are left verbatim even when false.
	chunk := "Snow is cold. Fire is hot."
	found := false
	for seed := uint64(0); seed < 30; seed++ {
		g := seededGen(seed)
		q := g.trueFalse(chunk, false)
		if q == nil {
			t.Fatalf("seed %d: expected a question", seed)
		}
		if q.CorrectAnswer == "false" {
			found = true
			if q.Question != "True or False: Snow is cold" {
				t.Errorf("seed %d: short sentence was modified: %q", seed, q.Question)
			}
		}
	}
	if !found {
		t.Error("expected at least one false outcome across seeds")
	}
}

func TestShortAnswer_PicksLongWord(t *testing.T) {
	chunk := "Photosynthesis converts sunlight into chemical energy. Plants need it."
	sentence := strings.Split(chunk, ". ")[0]
	for seed := uint64(0); seed < 10; seed++ {
		g := seededGen(seed)
		q := g.shortAnswer(chunk, false)
		if q == nil {
			t.Fatalf("seed %d: expected a question", seed)
		}
		if len(q.CorrectAnswer) <= 4 {
			t.Errorf("seed %d: answer %q is not longer than 4 chars", seed, q.CorrectAnswer)
		}
		if !strings.Contains(sentence, q.CorrectAnswer) {
			t.Errorf("seed %d: answer %q not found in sentence", seed, q.CorrectAnswer)
		}
	}
}

func TestShortAnswer_NoQualifyingWords(t *testing.T) {
	g := seededGen(1)
	if q := g.shortAnswer("a be of to it up. x.", false); q != nil {
		t.Errorf("expected nil when no word exceeds 4 chars, got %+v", q)
	}
}

func TestFillInTheBlank_BlankAndOptions(t *testing.T) {
	chunk := "Rivers carve deep canyons through solid rock. Erosion never stops."
	sentence := strings.Split(chunk, ". ")[0]
	for seed := uint64(0); seed < 20; seed++ {
		g := seededGen(seed)
		q := g.fillInTheBlank(chunk, false)
		if q == nil {
			t.Fatalf("seed %d: expected a question", seed)
		}
		if !strings.Contains(q.Question, blankMarker) {
			t.Errorf("seed %d: question has no blank: %q", seed, q.Question)
		}
		if len(q.Options) != 4 {
			t.Errorf("seed %d: expected 4 options, got %d", seed, len(q.Options))
		}
		if n := countEqual(q.Options, q.CorrectAnswer); n != 1 {
			t.Errorf("seed %d: answer %q appears %d times in %v", seed, q.CorrectAnswer, n, q.Options)
		}
		// Substituting the answer back restores the sentence.
		restored := strings.Replace(q.Question, blankMarker, q.CorrectAnswer, 1)
		if restored != sentence {
			t.Errorf("seed %d: expected %q after restoring blank, got %q", seed, sentence, restored)
		}
	}
}

func TestFillInTheBlank_TooFewWords(t *testing.T) {
	g := seededGen(1)
	if q := g.fillInTheBlank("Too few words here. More text.", false); q != nil {
		t.Errorf("expected nil for short sentence, got %+v", q)
	}
}
