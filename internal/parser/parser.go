package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
)

// Extractor converts raw document bytes into plain text suitable for
// quiz generation. Structure (headings, pages, tables) is flattened;
// downstream processing only needs sentence boundaries.
type Extractor interface {
	Extract(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
	".doc":      true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".csv":
		return &CSVExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx", ".doc":
		// Legacy .doc goes through the docx reader as well; genuinely old
		// binary .doc files will fail to parse and surface as an extraction error.
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Extensions returns the supported extensions without the leading dot, sorted
// for stable API responses.
func Extensions() []string {
	out := make([]string, 0, len(SupportedExtensions))
	for ext := range SupportedExtensions {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	slices.Sort(out)
	return out
}
