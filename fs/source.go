// Package fs reads and writes documents in a local site directory laid
// out as {root}/docs/{name}.md.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path"
	"strings"

	"github.com/fwojciec/docsite"
	"github.com/gosimple/slug"
)

// Ensure Source implements docsite.Source and docsite.Lister at compile time.
var (
	_ docsite.Source = (*Source)(nil)
	_ docsite.Lister = (*Source)(nil)
)

// Source reads documents from a file system rooted at the site directory.
type Source struct {
	fsys iofs.FS
}

// NewSource creates a Source reading the site directory at root.
func NewSource(root string) *Source {
	return &Source{fsys: os.DirFS(root)}
}

// NewSourceFS creates a Source over fsys.
func NewSourceFS(fsys iofs.FS) *Source {
	return &Source{fsys: fsys}
}

// Fetch returns the Markdown of the named document.
func (s *Source) Fetch(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p := docsite.DocumentPath(name)
	if !iofs.ValidPath(p) || strings.Contains(name, "/") {
		return "", docsite.Errorf(docsite.EINVALID, "invalid document path %q", p)
	}

	data, err := iofs.ReadFile(s.fsys, p)
	if errors.Is(err, iofs.ErrNotExist) {
		return "", docsite.Errorf(docsite.ENOTFOUND, "%s does not exist", p)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the names of the documents in the docs directory, sorted.
// Files whose names are not slugs are skipped.
func (s *Source) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches, err := iofs.Glob(s.fsys, path.Join("docs", "*.md"))
	if err != nil {
		return nil, err
	}

	var names []string
	for _, m := range matches {
		name := strings.TrimSuffix(path.Base(m), ".md")
		if slug.IsSlug(name) {
			names = append(names, name)
		}
	}
	return names, nil
}
