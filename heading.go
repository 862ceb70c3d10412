package docsite

import (
	"regexp"
	"strconv"
	"strings"
)

// Heading represents a heading element of a rendered document.
type Heading struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
	Text  string `json:"text"`
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w\-]`)
)

// Slugify derives an anchor id from heading text: lowercase, whitespace runs
// become a hyphen, anything outside [A-Za-z0-9_-] is dropped.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = whitespaceRe.ReplaceAllString(s, "-")
	return nonWordRe.ReplaceAllString(s, "")
}

// PositionalID returns the fallback id for the heading at index.
func PositionalID(index int) string {
	return "heading-" + strconv.Itoa(index)
}
