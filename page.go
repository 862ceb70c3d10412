package docsite

import "context"

// Page is an external HTML page imported into the site as a Markdown document.
type Page struct {
	Name        string
	SourceURL   string
	Title       string
	Description string
	Content     string // Markdown
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "page name required")
	}
	if p.SourceURL == "" {
		return Errorf(EINVALID, "page source URL required")
	}
	return nil
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata. It may still carry
	// the site name, as in "Install | Acme Docs".
	Title string

	SiteName    string
	Description string

	// ContentHTML is the main content with site navigation, sidebars and
	// footers removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages. pageURL is the address
// the page was fetched from and may be empty.
type Extractor interface {
	Extract(html, pageURL string) (*ExtractResult, error)
}

// PageConverter converts HTML into Markdown.
type PageConverter interface {
	// Convert transforms clean HTML into Markdown. Relative links are
	// resolved against baseURL when it is not empty.
	Convert(html, baseURL string) (string, error)
}

// PageWriter persists imported pages into the documents directory.
type PageWriter interface {
	WritePage(ctx context.Context, page *Page) error
}
