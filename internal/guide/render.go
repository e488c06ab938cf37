package guide

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed guide.md
var guideMarkdown []byte

// Markdown returns the raw selection guide.
func Markdown() []byte {
	out := make([]byte, len(guideMarkdown))
	copy(out, guideMarkdown)
	return out
}

// RenderHTML converts the embedded selection guide to an HTML fragment.
func RenderHTML() ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(guideMarkdown, &buf); err != nil {
		return nil, fmt.Errorf("rendering guide: %w", err)
	}
	return buf.Bytes(), nil
}
