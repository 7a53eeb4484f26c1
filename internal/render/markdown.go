// Package render turns the markdown copy of the portfolio into HTML.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
)

// Markdown converts src to HTML. Raw HTML in src is not passed through.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

