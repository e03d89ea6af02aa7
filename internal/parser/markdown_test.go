package parser

import (
	"strings"
	"testing"
)

func TestMarkdownExtractor_HeadingsAndParagraphs(t *testing.T) {
	input := "# Geology\n\nRocks form over long periods.\n\n## Erosion\n\nWind and water wear them down.\n"
	p := &MarkdownExtractor{}
	got, err := p.Extract(strings.NewReader(input), "notes.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Geology",
		"Rocks form over long periods.",
		"Erosion",
		"Wind and water wear them down.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got %q", want, got)
		}
	}
	if strings.Contains(got, "#") {
		t.Errorf("heading markers leaked into output: %q", got)
	}
}

func TestMarkdownExtractor_ListItems(t *testing.T) {
	input := "Facts:\n\n- water freezes at zero\n- water boils at one hundred\n"
	p := &MarkdownExtractor{}
	got, err := p.Extract(strings.NewReader(input), "facts.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "water freezes at zero") || !strings.Contains(got, "water boils at one hundred") {
		t.Errorf("list items missing from output: %q", got)
	}
}

func TestMarkdownExtractor_Empty(t *testing.T) {
	p := &MarkdownExtractor{}
	got, err := p.Extract(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
