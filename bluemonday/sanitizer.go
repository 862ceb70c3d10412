// Package bluemonday sanitizes rendered HTML using microcosm-cc/bluemonday.
package bluemonday

import (
	"regexp"

	"github.com/fwojciec/docsite"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements docsite.Sanitizer at compile time.
var _ docsite.Sanitizer = (*Sanitizer)(nil)

var (
	classRe     = regexp.MustCompile(`^[\w\- ]+$`)
	frameSrcRe  = regexp.MustCompile(`^https?://`)
	frameAllow  = regexp.MustCompile(`^[\w\-; ]*$`)
	referrerRe  = regexp.MustCompile(`^[a-z\-]+$`)
	loadingRe   = regexp.MustCompile(`^(lazy|eager)$`)
	ariaFlagsRe = regexp.MustCompile(`^(true|false)$`)
)

// Sanitizer strips script vectors from rendered documents. It extends the
// user generated content policy with the classes emitted by the
// highlighter, heading anchors and embedded players.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowElements("pre", "code", "span", "div", "mark", "iframe")
	p.AllowAttrs("class").Matching(classRe).Globally()
	p.AllowAttrs("aria-hidden").Matching(ariaFlagsRe).Globally()
	p.AllowAttrs("src").Matching(frameSrcRe).OnElements("iframe")
	p.AllowAttrs("allow").Matching(frameAllow).OnElements("iframe")
	p.AllowAttrs("loading").Matching(loadingRe).OnElements("iframe")
	p.AllowAttrs("referrerpolicy").Matching(referrerRe).OnElements("iframe")
	p.AllowAttrs("allowfullscreen", "width", "height", "title").OnElements("iframe")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	return &Sanitizer{policy: p}
}

// Sanitize returns html with disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
