package main_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importPage = `<!DOCTYPE html>
<html>
<head><title>Configuration Guide | Example Docs</title>
<meta property="og:site_name" content="Example Docs"></head>
<body>
<nav><a href="/">Home</a> <a href="/blog">Blog</a></nav>
<main>
<article>
<h1>Configuration Guide</h1>
<p>The service reads its configuration from environment variables at startup. Every option has a sensible default so that a fresh installation works without any changes.</p>
<h2>Timeouts</h2>
<p>Requests to upstream services time out after thirty seconds. Set the REQUEST_TIMEOUT variable to change this limit for slow networks or large payloads.</p>
<p>See the <a href="/docs/limits">limits page</a> for the maximum values accepted by the service.</p>
</article>
</main>
<footer>Copyright Example Corp</footer>
</body>
</html>`

func TestImportCmd(t *testing.T) {
	t.Parallel()

	t.Run("writes the page as a document with front matter", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(importPage))
		}))
		defer ts.Close()

		root := writeSite(t)
		out, err := run(t, "", "--root", root, "import", "configuration="+ts.URL+"/docs/configuration")
		require.NoError(t, err)
		assert.Contains(t, out, "Imported configuration")

		data, err := os.ReadFile(filepath.Join(root, "docs", "configuration.md"))
		require.NoError(t, err)
		content := string(data)
		assert.Contains(t, content, "source: "+ts.URL+"/docs/configuration")
		assert.Contains(t, content, "title: Configuration Guide\n")
		assert.Contains(t, content, "Requests to upstream services time out")

		rendered, err := run(t, "", "--root", root, "render", "configuration")
		require.NoError(t, err)
		assert.Contains(t, rendered, "REQUEST_TIMEOUT")
	})

	t.Run("refuses to replace an existing document", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(importPage))
		}))
		defer ts.Close()

		_, err := run(t, "", "--root", writeSite(t), "import", "deploy="+ts.URL)

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})

	t.Run("requires a local site", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "", "--origin", "https://docs.example.com", "import", "guide=https://example.com/guide")

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})

	t.Run("imports the pages of a manifest", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/docs/missing" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte(importPage))
		}))
		defer ts.Close()

		root := writeSite(t)
		manifest := filepath.Join(t.TempDir(), "pages.yaml")
		require.NoError(t, os.WriteFile(manifest, []byte("base: "+ts.URL+"/docs/\npages:\n  - url: configuration\n  - name: timeouts\n    url: timeouts.html\n"), 0o644))

		out, err := run(t, "", "--root", root, "--rate", "100", "import", "--manifest", manifest)

		require.NoError(t, err)
		assert.Contains(t, out, "Imported configuration")
		assert.Contains(t, out, "Imported timeouts")
		assert.FileExists(t, filepath.Join(root, "docs", "configuration.md"))
		assert.FileExists(t, filepath.Join(root, "docs", "timeouts.md"))

		_, err = run(t, "", "--root", root, "--rate", "100", "import", "-f", "--manifest", manifest, "missing="+ts.URL+"/docs/missing")
		assert.Equal(t, docsite.ENOTFOUND, docsite.ErrorCode(err))
	})

	t.Run("requires pages", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "", "--root", writeSite(t), "import")

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})
}
