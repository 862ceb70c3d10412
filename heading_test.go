package docsite_test

import (
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"strips punctuation", "Hello, World!", "hello-world"},
		{"lowercases", "Getting Started With Go", "getting-started-with-go"},
		{"drops dots and parentheses", "API Reference (v2.0)", "api-reference-v20"},
		{"collapses whitespace runs", "  Deploy \t to   prod  ", "deploy-to-prod"},
		{"keeps underscores and hyphens", "snake_case and-kebab", "snake_case-and-kebab"},
		{"drops non-ascii letters", "Añadir índice", "aadir-ndice"},
		{"empty for punctuation only", "?!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docsite.Slugify(tt.text))
		})
	}
}

func TestSlugify_IsStable(t *testing.T) {
	t.Parallel()

	first := docsite.Slugify("Async Client: Usage")
	second := docsite.Slugify("Async Client: Usage")

	assert.Equal(t, first, second)
	assert.Equal(t, "async-client-usage", first)
}

func TestPositionalID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "heading-3", docsite.PositionalID(3))
}
