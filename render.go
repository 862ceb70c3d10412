package docsite

// Rendered is the sanitized HTML of a document together with the headings
// present in it after id assignment, in document order.
type Rendered struct {
	HTML     string    `json:"html"`
	Headings []Heading `json:"headings"`
}

// Renderer converts a document's Markdown into navigable, sanitized HTML.
type Renderer interface {
	// Render returns the HTML for the named document.
	// Returns EUNAVAILABLE if a rendering capability is missing.
	Render(name, markdown string) (*Rendered, error)
}

// Converter converts Markdown to HTML using GitHub-flavored rules.
type Converter interface {
	Convert(markdown string) (string, error)
}

// Highlighter applies syntax highlighting to code.
type Highlighter interface {
	// Highlight returns highlighted HTML for code written in lang.
	// ok is false when the language is not recognized; callers then emit
	// the code unmodified.
	Highlight(code, lang string) (html string, ok bool)
}

// AnchorFunc returns the href of the anchor control for a heading id.
type AnchorFunc func(id string) string

// Decorator post-processes converted HTML: it filters embedded frames,
// assigns heading ids and prepends anchor controls.
type Decorator interface {
	Decorate(html string, anchor AnchorFunc) (*Rendered, error)
}

// Sanitizer removes script injection vectors from an HTML fragment.
type Sanitizer interface {
	Sanitize(html string) string
}
