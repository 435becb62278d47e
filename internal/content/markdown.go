package content

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// MarkdownRenderer converts page bodies to HTML. The goldmark engine is
// stateless so a single renderer can be shared across loads without locking.
type MarkdownRenderer struct {
	engine goldmark.Markdown
}

// NewMarkdownRenderer constructs a renderer with GFM tables, strikethrough,
// and autolinking enabled, matching what the page bodies rely on.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts Markdown source into HTML.
func (r *MarkdownRenderer) Render(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("content: render markdown: %w", err)
	}
	return buf.String(), nil
}
