package enrich

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var stripPolicy = bluemonday.StrictPolicy()

// MarkdownToPlainText renders markdown to HTML and strips every tag,
// returning plain text with entities unescaped. Render failures fall back
// to stripping the raw input.
func MarkdownToPlainText(markdown string) string {
	var rendered bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &rendered); err != nil {
		return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(markdown)))
	}

	stripped := stripPolicy.Sanitize(rendered.String())

	return strings.TrimSpace(html.UnescapeString(stripped))
}
