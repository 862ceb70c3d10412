// Package trafilatura extracts the main content of imported HTML pages.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/docsite"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docsite.Extractor at compile time.
var _ docsite.Extractor = (*Extractor)(nil)

// Extractor finds the article of a documentation page with go-trafilatura.
// Images and links are kept so the imported document can still point at
// its figures and neighbouring pages.
type Extractor struct {
	// KeepTables keeps tables in the extracted content. Reference pages
	// are often mostly tables.
	KeepTables bool
}

// NewExtractor returns an Extractor that keeps tables.
func NewExtractor() *Extractor {
	return &Extractor{KeepTables: true}
}

// Extract returns the main content of rawHTML along with the title, site
// name and description found in the page metadata.
func (e *Extractor) Extract(rawHTML, pageURL string) (*docsite.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docsite.Errorf(docsite.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   !e.KeepTables,
		IncludeImages:   true,
		IncludeLinks:    true,
	}
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, docsite.Errorf(docsite.EINVALID, "invalid page URL %q", pageURL)
		}
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, &docsite.Error{Code: docsite.ENOTFOUND, Message: "no main content found", Err: err}
	}
	if result.ContentNode == nil {
		return nil, docsite.Errorf(docsite.ENOTFOUND, "no main content found")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.ContentText) == "" {
		return nil, docsite.Errorf(docsite.ENOTFOUND, "no main content found")
	}

	return &docsite.ExtractResult{
		Title:       result.Metadata.Title,
		SiteName:    result.Metadata.Sitename,
		Description: result.Metadata.Description,
		ContentHTML: buf.String(),
	}, nil
}
