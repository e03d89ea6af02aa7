package parser

import (
	"fmt"
	"slices"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"notes.txt", "*parser.TextExtractor"},
		{"readme.md", "*parser.MarkdownExtractor"},
		{"guide.markdown", "*parser.MarkdownExtractor"},
		{"data.csv", "*parser.CSVExtractor"},
		{"page.html", "*parser.HTMLExtractor"},
		{"page.htm", "*parser.HTMLExtractor"},
		{"paper.PDF", "*parser.PDFExtractor"},
		{"report.docx", "*parser.DOCXExtractor"},
		{"legacy.doc", "*parser.DOCXExtractor"},
	}
	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			got, err := ForFile(tc.filename)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g := fmt.Sprintf("%T", got); g != tc.want {
				t.Errorf("expected %s, got %s", tc.want, g)
			}
		})
	}
}

func TestForFile_Unsupported(t *testing.T) {
	if _, err := ForFile("archive.zip"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("Notes.TXT") {
		t.Error("expected case-insensitive extension match")
	}
	if IsSupportedExtension("image.png") {
		t.Error("expected png to be unsupported")
	}
	if IsSupportedExtension("noextension") {
		t.Error("expected missing extension to be unsupported")
	}
}

func TestExtensions_Sorted(t *testing.T) {
	exts := Extensions()
	if len(exts) != len(SupportedExtensions) {
		t.Fatalf("expected %d extensions, got %d", len(SupportedExtensions), len(exts))
	}
	if !slices.IsSorted(exts) {
		t.Errorf("expected sorted extensions, got %v", exts)
	}
	if !slices.Contains(exts, "pdf") || !slices.Contains(exts, "docx") {
		t.Errorf("expected pdf and docx in %v", exts)
	}
}
