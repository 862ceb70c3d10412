package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docsite"
	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// Ensure Writer implements docsite.PageWriter at compile time.
var _ docsite.PageWriter = (*Writer)(nil)

// Writer writes imported pages into the docs directory of a site.
type Writer struct {
	root string

	// Overwrite allows replacing an existing document.
	Overwrite bool

	// Now returns the import time. Defaults to time.Now.
	Now func() time.Time
}

// NewWriter creates a Writer for the site directory at root.
func NewWriter(root string) *Writer {
	return &Writer{root: root, Now: time.Now}
}

// Path returns the file path of the named document.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.root, filepath.FromSlash(docsite.DocumentPath(name)))
}

// WritePage writes page to docs/{name}.md with front matter. The file is
// written to a temporary file first and renamed into place.
func (w *Writer) WritePage(ctx context.Context, page *docsite.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}
	if !slug.IsSlug(page.Name) {
		return docsite.Errorf(docsite.EINVALID, "invalid document name %q", page.Name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target := w.Path(page.Name)
	if !w.Overwrite {
		if _, err := os.Stat(target); err == nil {
			return docsite.Errorf(docsite.EINVALID, "document %q already exists", page.Name)
		}
	}

	content, err := FormatPage(page, w.now())
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+page.Name+"-*.md.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

func (w *Writer) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}

// pageMeta is the front matter written for imported pages.
type pageMeta struct {
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Source      string `yaml:"source"`
	Imported    string `yaml:"imported"`
}

// FormatPage formats a page as Markdown with YAML front matter.
func FormatPage(page *docsite.Page, importedAt time.Time) ([]byte, error) {
	meta, err := yaml.Marshal(&pageMeta{
		Title:       page.Title,
		Description: page.Description,
		Source:      page.SourceURL,
		Imported:    importedAt.Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(page.Content)
	return b.Bytes(), nil
}
