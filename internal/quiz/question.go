package quiz

import "strings"

// Type tags the four supported question kinds.
type Type string

const (
	TypeMultipleChoice Type = "multiple_choice"
	TypeTrueFalse      Type = "true_false"
	TypeShortAnswer    Type = "short_answer"
	TypeFillInTheBlank Type = "fill_in_the_blank"
)

// ParseType maps an external token to its canonical Type. Both the short and
// long spellings are accepted, case-insensitively.
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mcq", "multiple_choice":
		return TypeMultipleChoice, true
	case "truefalse", "true_false":
		return TypeTrueFalse, true
	case "shortanswer", "short_answer":
		return TypeShortAnswer, true
	case "fillintheblank", "fill_in_the_blank":
		return TypeFillInTheBlank, true
	}
	return "", false
}

// Difficulties accepted by the generator. The label is stored with the
// request but does not currently alter synthesis.
var Difficulties = []string{"easy", "medium", "hard"}

// ParseDifficulty normalizes a difficulty token, case-insensitively.
func ParseDifficulty(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Difficulties {
		if s == d {
			return d, true
		}
	}
	return "", false
}

// Question is one generated quiz item. Options is present only for the
// choice-based kinds; CorrectIndex is set only by an explicit shuffle step.
type Question struct {
	Type          Type     `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	CorrectIndex  *int     `json:"correct_answer_index,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Options configures one generation call.
type Options struct {
	NumQuestions        int
	Difficulty          string
	Types               []Type
	IncludeExplanations bool
}
