package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/quizgen/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for quizgen.
type Server struct {
	router chi.Router
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		log: log,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(CORS(s.cfg.CORSAllowOrigin))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Post("/api/quiz", s.handleGenerateQuiz)
	r.Post("/api/quiz/check", s.handleCheckAnswer)
	r.Post("/api/quiz/check/batch", s.handleCheckBatch)

	r.Get("/api/formats", s.handleFormats)
	r.Get("/api/difficulties", s.handleDifficulties)
	r.Get("/api/question-types", s.handleQuestionTypes)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "quizgen",
		"health":  "/health",
		"quiz":    "/api/quiz",
	})
}
