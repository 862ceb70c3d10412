// Package importer turns pages of external documentation sites into
// documents of the site. A page is fetched, reduced to its article,
// converted to Markdown and written to the documents directory.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/docsite"
	"github.com/gosimple/slug"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Defaults used when the corresponding Importer field is zero.
const (
	DefaultConcurrency = 4
	DefaultRetries     = 2
	DefaultRetryDelay  = time.Second
)

// Request names a page and the document it becomes.
type Request struct {
	Name string
	URL  string
}

// Outcome is the result of importing one page. Exactly one of Page and
// Err is set.
type Outcome struct {
	Request
	Page *docsite.Page
	Err  error
}

// Importer imports HTML pages as Markdown documents.
type Importer struct {
	Fetcher   docsite.Fetcher
	Extractor docsite.Extractor
	Converter docsite.PageConverter
	Writer    docsite.PageWriter

	// Fallback, if set, is tried when Extractor fails or finds nothing.
	Fallback docsite.Extractor

	// Concurrency bounds the pages imported at once.
	Concurrency int

	// HostInterval is the minimum time between two requests to the same
	// host. Zero disables throttling.
	HostInterval time.Duration

	// Retries is the number of extra attempts for a fetch that failed
	// with a transient error. RetryDelay is the wait before the first
	// retry and doubles for each one after. Negative Retries disables
	// retrying.
	Retries    int
	RetryDelay time.Duration

	Logger *slog.Logger

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// Import imports a single page.
func (im *Importer) Import(ctx context.Context, req Request) (*docsite.Page, error) {
	u, err := validate(req)
	if err != nil {
		return nil, err
	}

	html, err := im.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	extracted, err := im.extract(html, u.String())
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", u, err)
	}

	markdown, err := im.Converter.Convert(extracted.ContentHTML, u.String())
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", u, err)
	}

	page := &docsite.Page{
		Name:        req.Name,
		SourceURL:   u.String(),
		Title:       PageTitle(extracted.Title, extracted.SiteName),
		Description: strings.TrimSpace(extracted.Description),
		Content:     markdown,
	}
	if err := im.Writer.WritePage(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// ImportAll imports reqs concurrently. done, if set, is called once per
// page as it finishes, never concurrently. A failing page does not stop
// the others. The outcomes are returned in request order; the error is
// non-nil only when ctx is canceled.
func (im *Importer) ImportAll(ctx context.Context, reqs []Request, done func(Outcome)) ([]Outcome, error) {
	limit := im.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var mu sync.Mutex
	outcomes := make([]Outcome, len(reqs))

	g := new(errgroup.Group)
	g.SetLimit(limit)
	for i, req := range reqs {
		g.Go(func() error {
			o := Outcome{Request: req}
			if err := ctx.Err(); err != nil {
				o.Err = err
			} else {
				o.Page, o.Err = im.Import(ctx, req)
			}

			mu.Lock()
			defer mu.Unlock()
			outcomes[i] = o
			if done != nil {
				done(o)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// extract runs Extractor and, when it fails or yields no content,
// Fallback. A title found only by the first is kept.
func (im *Importer) extract(html, pageURL string) (*docsite.ExtractResult, error) {
	result, err := im.Extractor.Extract(html, pageURL)
	if err == nil && strings.TrimSpace(result.ContentHTML) != "" {
		return result, nil
	}
	if err == nil {
		err = docsite.Errorf(docsite.ENOTFOUND, "no main content found")
	}
	if im.Fallback == nil {
		return nil, err
	}

	fallback, ferr := im.Fallback.Extract(html, pageURL)
	if ferr != nil {
		return nil, ferr
	}
	if result != nil {
		if fallback.Title == "" {
			fallback.Title = result.Title
		}
		if fallback.SiteName == "" {
			fallback.SiteName = result.SiteName
		}
	}
	return fallback, nil
}

func (im *Importer) logger() *slog.Logger {
	if im.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return im.Logger
}

// validate checks that req names a valid document and an http or https
// page.
func validate(req Request) (*url.URL, error) {
	if !slug.IsSlug(req.Name) {
		return nil, docsite.Errorf(docsite.EINVALID, "invalid document name %q", req.Name)
	}
	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, docsite.Errorf(docsite.EINVALID, "invalid page URL %q", req.URL)
	}
	return u, nil
}
