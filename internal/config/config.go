package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Upload limits
	MaxUploadBytes int64

	// Quiz generation
	MinQuestionCount     int
	MaxQuestionCount     int
	DefaultQuestionCount int
	DefaultDifficulty    string
	ChunkSize            int

	// PDF
	PDFFallbackPdftotext bool

	// CORS
	CORSAllowOrigin string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8000"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		MinQuestionCount:     envInt("MIN_QUESTION_COUNT", 3),
		MaxQuestionCount:     envInt("MAX_QUESTION_COUNT", 50),
		DefaultQuestionCount: envInt("DEFAULT_QUESTION_COUNT", 10),
		DefaultDifficulty:    envOr("DEFAULT_DIFFICULTY", "medium"),
		ChunkSize:            envInt("CHUNK_SIZE", 500),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		CORSAllowOrigin: envOr("CORS_ALLOW_ORIGIN", "*"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.MinQuestionCount <= 0 {
		cfg.MinQuestionCount = 3
	}
	if cfg.MaxQuestionCount <= 0 {
		cfg.MaxQuestionCount = 50
	}
	if cfg.DefaultQuestionCount <= 0 {
		cfg.DefaultQuestionCount = 10
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 500
	}

	return cfg
}

func (c Config) Validate() error {
	if c.MaxQuestionCount < c.MinQuestionCount {
		return fmt.Errorf("MAX_QUESTION_COUNT (%d) is below MIN_QUESTION_COUNT (%d)", c.MaxQuestionCount, c.MinQuestionCount)
	}
	if c.DefaultQuestionCount < c.MinQuestionCount || c.DefaultQuestionCount > c.MaxQuestionCount {
		return fmt.Errorf("DEFAULT_QUESTION_COUNT (%d) is outside [%d, %d]", c.DefaultQuestionCount, c.MinQuestionCount, c.MaxQuestionCount)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
