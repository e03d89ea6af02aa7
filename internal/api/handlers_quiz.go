package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/quizgen/internal/export"
	"github.com/dgallion1/quizgen/internal/parser"
	"github.com/dgallion1/quizgen/internal/quiz"
	"github.com/oklog/ulid/v2"
)

// handleGenerateQuiz accepts uploaded documents plus generation options,
// extracts their text, and returns a generated quiz. All input validation
// happens before any extraction or generation work starts.
func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// Limit total request size, with slack for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*4+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	count := s.cfg.DefaultQuestionCount
	if v := r.FormValue("question_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			jsonError(w, "question count must be an integer", http.StatusBadRequest)
			return
		}
		count = n
	}
	if count < s.cfg.MinQuestionCount {
		jsonError(w, fmt.Sprintf("question count must be at least %d", s.cfg.MinQuestionCount), http.StatusBadRequest)
		return
	}
	if count > s.cfg.MaxQuestionCount {
		jsonError(w, fmt.Sprintf("question count cannot exceed %d", s.cfg.MaxQuestionCount), http.StatusBadRequest)
		return
	}

	difficulty := s.cfg.DefaultDifficulty
	if v := r.FormValue("difficulty"); v != "" {
		difficulty = v
	}
	difficulty, ok := quiz.ParseDifficulty(difficulty)
	if !ok {
		jsonError(w, "difficulty must be one of: easy, medium, hard", http.StatusBadRequest)
		return
	}

	// question_types arrives as a JSON array string; absent means all four.
	tokens := []string{"mcq", "truefalse", "shortanswer", "fillintheblank"}
	if v := r.FormValue("question_types"); v != "" {
		tokens = nil
		if err := json.Unmarshal([]byte(v), &tokens); err != nil {
			jsonError(w, "invalid JSON format for question_types", http.StatusBadRequest)
			return
		}
		if len(tokens) == 0 {
			jsonError(w, "at least one question type must be selected", http.StatusBadRequest)
			return
		}
	}
	types := make([]quiz.Type, 0, len(tokens))
	for _, tok := range tokens {
		t, ok := quiz.ParseType(tok)
		if !ok {
			jsonError(w, "invalid question type: "+tok, http.StatusBadRequest)
			return
		}
		types = append(types, t)
	}

	includeExplanations := true
	if v := r.FormValue("include_explanations"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			jsonError(w, "include_explanations must be a boolean", http.StatusBadRequest)
			return
		}
		includeExplanations = b
	}

	shuffle := r.FormValue("shuffle_options") == "true"

	format := "json"
	if v := r.FormValue("format"); v != "" {
		format = strings.ToLower(v)
		if !export.Formats[format] {
			jsonError(w, "format must be one of: json, csv, html", http.StatusBadRequest)
			return
		}
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file must be uploaded", http.StatusBadRequest)
		return
	}

	// Reject all files up front before extracting any.
	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)
		if !parser.IsSupportedExtension(filename) {
			jsonError(w, fmt.Sprintf("file %q: unsupported file type %s", filename, filepath.Ext(filename)), http.StatusBadRequest)
			return
		}
		if fh.Size > s.cfg.MaxUploadBytes {
			jsonError(w, fmt.Sprintf("file %q exceeds max size (%d bytes)", filename, s.cfg.MaxUploadBytes), http.StatusBadRequest)
			return
		}
	}

	// Extract text from every file. A single failure is fatal to the batch:
	// no partial-document quizzes.
	var extracted strings.Builder
	filesProcessed := 0
	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)

		f, err := fh.Open()
		if err != nil {
			jsonError(w, fmt.Sprintf("error processing file %q", filename), http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil {
			jsonError(w, fmt.Sprintf("error processing file %q", filename), http.StatusBadRequest)
			return
		}

		ex, err := parser.ForFile(filename)
		if err != nil {
			jsonError(w, fmt.Sprintf("file %q: %s", filename, err), http.StatusBadRequest)
			return
		}
		if pe, ok := ex.(*parser.PDFExtractor); ok {
			pe.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
		}

		text, err := ex.Extract(bytes.NewReader(data), filename)
		if err != nil {
			s.log.Error("extraction failed", "file", filename, "error", err)
			jsonError(w, fmt.Sprintf("error processing file %q", filename), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		extracted.WriteString("\n\n")
		extracted.WriteString(text)
		filesProcessed++
	}

	text := extracted.String()
	if strings.TrimSpace(text) == "" {
		jsonError(w, "could not extract text from any of the uploaded files", http.StatusBadRequest)
		return
	}

	g := quiz.NewGenerator(s.cfg.ChunkSize)
	questions := g.Generate(text, quiz.Options{
		NumQuestions:        count,
		Difficulty:          difficulty,
		Types:               types,
		IncludeExplanations: includeExplanations,
	})

	// Format/validate pass; a question that fails its own shape check is a
	// synthesis bug, so it is dropped and logged rather than returned.
	kept := questions[:0]
	for _, q := range questions {
		q = quiz.Format(q)
		if err := quiz.Validate(q); err != nil {
			s.log.Error("dropping malformed question", "type", q.Type, "error", err)
			continue
		}
		if shuffle && len(q.Options) > 0 {
			shuffled, err := g.Shuffle(q)
			if err != nil {
				s.log.Error("shuffle failed", "type", q.Type, "error", err)
				continue
			}
			q = shuffled
		}
		kept = append(kept, q)
	}
	questions = kept

	if len(questions) == 0 {
		jsonError(w, "failed to generate any questions", http.StatusInternalServerError)
		return
	}

	duration := time.Since(start)
	s.log.Info("quiz generated",
		"num_files", filesProcessed,
		"num_questions", len(questions),
		"difficulty", difficulty,
		"question_types", tokens,
		"duration_ms", duration.Milliseconds(),
	)

	switch format {
	case "csv":
		out, err := export.CSV(questions)
		if err != nil {
			jsonError(w, "failed to export quiz", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		io.WriteString(w, out)
	case "html":
		out, err := export.HTML(questions)
		if err != nil {
			jsonError(w, "failed to export quiz", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, out)
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"quiz_id": ulid.Make().String(),
			"quiz":    questions,
			"metadata": map[string]any{
				"num_questions":           len(questions),
				"difficulty":              difficulty,
				"question_types":          tokens,
				"files_processed":         filesProcessed,
				"generation_time_seconds": float64(duration.Milliseconds()) / 1000,
				"key_phrases":             quiz.KeyPhrases(quiz.Normalize(text), 5),
			},
		})
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
