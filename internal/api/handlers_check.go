package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dgallion1/quizgen/internal/quiz"
)

// handleCheckAnswer validates a single submitted answer against the correct
// one. The client holds the quiz (nothing is persisted server-side), so it
// supplies both sides of the comparison.
func (s *Server) handleCheckAnswer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		jsonError(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	questionID, err := strconv.Atoi(r.FormValue("question_id"))
	if err != nil {
		jsonError(w, "question_id must be an integer", http.StatusBadRequest)
		return
	}

	userAnswer := r.FormValue("user_answer")
	correctAnswer := r.FormValue("correct_answer")
	if userAnswer == "" || correctAnswer == "" {
		jsonError(w, "user_answer and correct_answer are required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"question_id":    questionID,
		"is_correct":     quiz.CheckAnswer(userAnswer, correctAnswer),
		"user_answer":    userAnswer,
		"correct_answer": correctAnswer,
	})
}

// handleCheckBatch validates a list of submitted answers in one call.
func (s *Server) handleCheckBatch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Answers []quiz.Submission `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	report := quiz.CheckBatch(body.Answers)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"total_questions": report.TotalQuestions,
		"correct_answers": report.CorrectAnswers,
		"results":         report.Results,
	})
}
