package slug

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var wellFormed = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestGenerate(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"mixed case", "Understanding React Server Components", "understanding-react-server-components"},
		{"punctuation stripped", "Architecting the Future: Why I Built NovaTech", "architecting-the-future-why-i-built-novatech"},
		{"digits kept", "Top 10 Go Tips for 2024", "top-10-go-tips-for-2024"},
		{"existing hyphens collapse", "pre--release -- notes", "pre-release-notes"},
		{"whitespace runs", "  spaced \t out\n title  ", "spaced-out-title"},
		{"unicode stripped", "Café — résumé tips", "caf-rsum-tips"},
		{"only symbols", "!!!???", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Generate(tc.title))
		})
	}
}

func TestGenerateProducesWellFormedSlugs(t *testing.T) {
	titles := []string{
		"Hello, World!",
		"What's new in Go 1.24?",
		"100% coverage — myth & reality",
		"a",
		"trailing space ",
		"-leading hyphen",
	}

	for _, title := range titles {
		got := Generate(title)
		if got == "" {
			continue
		}
		assert.Regexp(t, wellFormed, got, "title %q", title)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	title := "Spring Boot Architecture: Best Practices"
	assert.Equal(t, Generate(title), Generate(title))
}
