// Package render prepares post content for storage: markdown conversion and
// HTML sanitization.
package render

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	// UGC policy: keeps formatting elements and class attributes (the
	// original seed content styles posts with utility classes) but strips
	// scripts and event handlers.
	policy = func() *bluemonday.Policy {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").Globally()
		return p
	}()
)

// Markdown converts markdown source to HTML.
func Markdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SanitizeHTML strips script content and unsafe attributes from HTML.
func SanitizeHTML(content string) string {
	return policy.Sanitize(content)
}
