// Package htmltomarkdown converts imported HTML pages into Markdown documents.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsite"
)

// permalinkSelector matches the link glyphs documentation generators put
// next to headings: docsite and VitePress, Sphinx, and GitHub style
// hidden anchors.
const permalinkSelector = "a.header-anchor, a.headerlink, " +
	"h1 a[aria-hidden], h2 a[aria-hidden], h3 a[aria-hidden], " +
	"h4 a[aria-hidden], h5 a[aria-hidden], h6 a[aria-hidden]"

// Ensure Converter implements docsite.PageConverter at compile time.
var _ docsite.PageConverter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to GitHub-flavored
// Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithCodeBlockFence("```"),
			),
			strikethrough.NewStrikethroughPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Heading permalinks are
// dropped so headings convert to their text alone. Relative links and
// images are made absolute against baseURL when it is set.
func (c *Converter) Convert(html, baseURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docsite.Errorf(docsite.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docsite.Errorf(docsite.EINVALID, "invalid HTML: %v", err)
	}
	doc.Find(permalinkSelector).Remove()

	var opts []converter.ConvertOptionFunc
	if baseURL != "" {
		opts = append(opts, converter.WithDomain(baseURL))
	}

	result, err := c.conv.ConvertNode(doc.Get(0), opts...)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(result)) + "\n", nil
}
