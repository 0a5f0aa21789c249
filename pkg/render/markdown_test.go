package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Heading\n\nSome *emphasis* here.")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Heading</h1>")
	assert.Contains(t, out, "<em>emphasis</em>")
}

func TestSanitizeHTMLStripsScripts(t *testing.T) {
	dirty := `<p class="lead">hello</p><script>alert("xss")</script><a href="x" onclick="evil()">link</a>`
	clean := SanitizeHTML(dirty)

	assert.Contains(t, clean, `<p class="lead">hello</p>`)
	assert.NotContains(t, clean, "<script>")
	assert.NotContains(t, clean, "onclick")
}

func TestSanitizeHTMLKeepsFormatting(t *testing.T) {
	content := `<div class="space-y-6"><ul class="list-disc"><li><strong>Go:</strong> fast builds</li></ul></div>`
	assert.Contains(t, SanitizeHTML(content), "<strong>Go:</strong>")
}
