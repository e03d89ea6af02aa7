package parser

import (
	"strings"
	"testing"
)

func TestTextExtractor_Basic(t *testing.T) {
	p := &TextExtractor{}
	got, err := p.Extract(strings.NewReader("First line.\nSecond line."), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "First line.\nSecond line." {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestTextExtractor_NormalizesCRLF(t *testing.T) {
	p := &TextExtractor{}
	got, err := p.Extract(strings.NewReader("one\r\ntwo\r\n"), "dos.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "one\ntwo\n" {
		t.Errorf("expected CRLF normalized, got %q", got)
	}
}

func TestTextExtractor_StripsBOM(t *testing.T) {
	p := &TextExtractor{}
	got, err := p.Extract(strings.NewReader("\uFEFFcontent"), "bom.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "content" {
		t.Errorf("expected BOM stripped, got %q", got)
	}
}

func TestTextExtractor_Empty(t *testing.T) {
	p := &TextExtractor{}
	got, err := p.Extract(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
