package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown files using goldmark.
type MarkdownExtractor struct{}

func (p *MarkdownExtractor) Extract(r io.Reader, filename string) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	// Walk the top-level blocks; headings and body text all become plain
	// paragraphs — structure does not matter downstream.
	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if t := nodeText(n, src); t != "" {
			blocks = append(blocks, t)
		}
	}

	return strings.Join(blocks, "\n\n"), nil
}

// nodeText gets the text content of a goldmark block node. Leaf blocks
// (headings, paragraphs, code) carry their own source lines; container
// blocks (lists, quotes) only have children.
func nodeText(n ast.Node, src []byte) string {
	if n.Type() != ast.TypeBlock {
		return ""
	}
	if lines := n.Lines(); lines.Len() > 0 {
		var buf bytes.Buffer
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := nodeText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}
