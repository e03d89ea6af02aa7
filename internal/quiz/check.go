package quiz

import "strings"

// CheckAnswer reports whether a submitted answer matches the correct one.
// Comparison is case-insensitive after trimming surrounding whitespace.
// No partial credit, no fuzzy matching.
func CheckAnswer(userAnswer, correctAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(correctAnswer))
}

// Submission pairs a user's answer with the expected one.
type Submission struct {
	QuestionID    int    `json:"question_id"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// Result is the outcome for one submission.
type Result struct {
	QuestionID int  `json:"question_id"`
	IsCorrect  bool `json:"is_correct"`
}

// BatchReport summarizes a batch check.
type BatchReport struct {
	TotalQuestions int      `json:"total_questions"`
	CorrectAnswers int      `json:"correct_answers"`
	Results        []Result `json:"results"`
}

// CheckBatch applies CheckAnswer pairwise over the submissions.
func CheckBatch(submissions []Submission) BatchReport {
	report := BatchReport{
		TotalQuestions: len(submissions),
		Results:        make([]Result, 0, len(submissions)),
	}
	for _, sub := range submissions {
		ok := CheckAnswer(sub.UserAnswer, sub.CorrectAnswer)
		if ok {
			report.CorrectAnswers++
		}
		report.Results = append(report.Results, Result{
			QuestionID: sub.QuestionID,
			IsCorrect:  ok,
		})
	}
	return report
}
