package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Named validation failures. Validate joins every failure it finds, so
// callers can match individual causes with errors.Is.
var (
	ErrUnknownType   = errors.New("unknown question type")
	ErrEmptyQuestion = errors.New("question text is empty")
	ErrTooFewOptions = errors.New("choice question must have at least 2 options")
	ErrMissingAnswer = errors.New("correct answer is missing")
	ErrBadBoolAnswer = errors.New(`true/false answer must be "true" or "false"`)
)

// Validate checks a question's required fields for its type. A nil return
// means the question is well-formed.
func Validate(q Question) error {
	var errs []error

	if strings.TrimSpace(q.Question) == "" {
		errs = append(errs, ErrEmptyQuestion)
	}

	switch q.Type {
	case TypeMultipleChoice, TypeFillInTheBlank:
		if len(q.Options) < 2 {
			errs = append(errs, ErrTooFewOptions)
		}
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			errs = append(errs, ErrMissingAnswer)
		}
	case TypeTrueFalse:
		if q.CorrectAnswer != "true" && q.CorrectAnswer != "false" {
			errs = append(errs, ErrBadBoolAnswer)
		}
	case TypeShortAnswer:
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			errs = append(errs, ErrMissingAnswer)
		}
	default:
		errs = append(errs, ErrUnknownType)
	}

	return errors.Join(errs...)
}

// Format returns a display-ready copy of the question: canonical lower-case
// type, cleaned question and option text, explanation truncated to 200
// characters on a word boundary.
func Format(q Question) Question {
	q.Type = Type(strings.ToLower(string(q.Type)))
	q.Question = CleanDisplay(q.Question)
	if q.Options != nil {
		options := make([]string, len(q.Options))
		for i, opt := range q.Options {
			options[i] = CleanDisplay(opt)
		}
		q.Options = options
	}
	if q.Explanation != "" {
		q.Explanation = Truncate(q.Explanation, 200)
	}
	return q
}

// ShuffleOptions re-orders a question's options uniformly at random and
// records the correct answer's new position in CorrectIndex. The correct
// answer must be present verbatim among the options; questions without
// options pass through unchanged.
func ShuffleOptions(q Question, rng *rand.Rand) (Question, error) {
	if len(q.Options) == 0 {
		return q, nil
	}

	options := make([]string, len(q.Options))
	copy(options, q.Options)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	idx := slices.Index(options, q.CorrectAnswer)
	if idx < 0 {
		return q, fmt.Errorf("correct answer %q not among options", q.CorrectAnswer)
	}

	q.Options = options
	q.CorrectIndex = &idx
	return q, nil
}
