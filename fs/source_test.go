package fs_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"docs/index.md":      {Data: []byte("# Home")},
		"docs/deploy.md":     {Data: []byte("# Deploy")},
		"docs/Bad Name.md":   {Data: []byte("# Bad")},
		"docs/notes.txt":     {Data: []byte("notes")},
		"docs/nested/sub.md": {Data: []byte("# Sub")},
		"secret.md":          {Data: []byte("secret")},
	}

	t.Run("fetches documents from the docs directory", func(t *testing.T) {
		t.Parallel()

		src := fs.NewSourceFS(fsys)

		md, err := src.Fetch(context.Background(), "deploy")

		require.NoError(t, err)
		assert.Equal(t, "# Deploy", md)
	})

	t.Run("returns not found for missing documents", func(t *testing.T) {
		t.Parallel()

		src := fs.NewSourceFS(fsys)

		_, err := src.Fetch(context.Background(), "missing")

		assert.Equal(t, docsite.ENOTFOUND, docsite.ErrorCode(err))
		assert.Contains(t, docsite.ErrorMessage(err), "docs/missing.md")
	})

	t.Run("refuses paths leaving the docs directory", func(t *testing.T) {
		t.Parallel()

		src := fs.NewSourceFS(fsys)

		for _, name := range []string{"../secret", "nested/sub", "/etc/passwd"} {
			_, err := src.Fetch(context.Background(), name)
			assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err), name)
		}
	})

	t.Run("lists slug named documents", func(t *testing.T) {
		t.Parallel()

		src := fs.NewSourceFS(fsys)

		names, err := src.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"deploy", "index"}, names)
	})

	t.Run("reads from a directory on disk", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		w := fs.NewWriter(root)
		require.NoError(t, w.WritePage(context.Background(), &docsite.Page{
			Name:      "guide",
			SourceURL: "https://example.com/guide",
			Content:   "# Guide",
		}))

		md, err := fs.NewSource(root).Fetch(context.Background(), "guide")

		require.NoError(t, err)
		assert.Contains(t, md, "# Guide")
	})
}
