// Package readability extracts the main content of imported HTML pages
// using Mozilla's Readability algorithm.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/docsite"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docsite.Extractor at compile time.
var _ docsite.Extractor = (*Extractor)(nil)

// Extractor reads the article of a page with go-readability. It is used
// when trafilatura finds nothing, typically on short pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the readable article of rawHTML. Relative links and
// images are resolved against pageURL when it is set.
func (e *Extractor) Extract(rawHTML, pageURL string) (*docsite.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docsite.Errorf(docsite.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, docsite.Errorf(docsite.EINVALID, "invalid page URL %q", pageURL)
		}
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, &docsite.Error{Code: docsite.ENOTFOUND, Message: "no readable content found", Err: err}
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, docsite.Errorf(docsite.ENOTFOUND, "no readable content found")
	}

	return &docsite.ExtractResult{
		Title:       article.Title,
		SiteName:    article.SiteName,
		Description: article.Excerpt,
		ContentHTML: article.Content,
	}, nil
}
