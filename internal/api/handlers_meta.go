package api

import (
	"net/http"

	"github.com/dgallion1/quizgen/internal/parser"
	"github.com/dgallion1/quizgen/internal/quiz"
)

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"supported_formats": parser.Extensions(),
		"max_file_size_mb":  float64(s.cfg.MaxUploadBytes) / (1024 * 1024),
	})
}

func (s *Server) handleDifficulties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"difficulty_levels": quiz.Difficulties,
	})
}

func (s *Server) handleQuestionTypes(w http.ResponseWriter, r *http.Request) {
	type typeInfo struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"question_types": []typeInfo{
			{ID: "mcq", Name: "Multiple Choice", Description: "Select one correct option from multiple choices"},
			{ID: "truefalse", Name: "True/False", Description: "Determine if statement is true or false"},
			{ID: "shortanswer", Name: "Short Answer", Description: "Type a short answer response"},
			{ID: "fillintheblank", Name: "Fill in the Blank", Description: "Select the correct word to complete the sentence"},
		},
	})
}
