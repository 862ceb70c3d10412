package search

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

// Snippet window sizes, in characters.
const (
	SnippetBefore   = 50
	SnippetAfter    = 100
	SnippetFallback = 150
)

const ellipsis = "..."

// Snippet returns the part of context around the first case-insensitive
// occurrence of query: up to SnippetBefore characters before it and up to
// len(query)+SnippetAfter characters from its start. Ellipses mark sides
// that were cut. Without an occurrence the first SnippetFallback
// characters are returned.
func Snippet(context, query string) string {
	text := []rune(context)
	at := indexFold(text, []rune(query))
	if at < 0 {
		if len(text) <= SnippetFallback {
			return context
		}
		return string(text[:SnippetFallback]) + ellipsis
	}

	start := max(0, at-SnippetBefore)
	end := min(len(text), at+len([]rune(query))+SnippetAfter)

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	b.WriteString(string(text[start:end]))
	if end < len(text) {
		b.WriteString(ellipsis)
	}
	return b.String()
}

// indexFold returns the rune offset of the first case-insensitive
// occurrence of sub in s, or -1.
func indexFold(s, sub []rune) int {
	if len(sub) == 0 {
		return 0
	}
outer:
	for i := 0; i+len(sub) <= len(s); i++ {
		for j, r := range sub {
			if unicode.ToLower(s[i+j]) != unicode.ToLower(r) {
				continue outer
			}
		}
		return i
	}
	return -1
}

// Highlight escapes snippet for HTML and wraps every case-insensitive
// occurrence of query in a <mark class="search-highlight"> element.
func Highlight(snippet, query string) string {
	if query == "" {
		return html.EscapeString(snippet)
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))

	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(snippet, -1) {
		b.WriteString(html.EscapeString(snippet[last:loc[0]]))
		b.WriteString(`<mark class="search-highlight">`)
		b.WriteString(html.EscapeString(snippet[loc[0]:loc[1]]))
		b.WriteString(`</mark>`)
		last = loc[1]
	}
	b.WriteString(html.EscapeString(snippet[last:]))
	return b.String()
}
