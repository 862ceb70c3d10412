package readability_test

import (
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guidePage is a short documentation page whose article links to a
// sibling page with a relative URL.
const guidePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Upgrading - Acme Docs</title>
<meta name="description" content="Moving between major versions.">
<meta property="og:site_name" content="Acme Docs">
</head>
<body>
<nav class="site-nav">
  <a class="nav-link" href="/changelog">Changelog</a>
  <a class="nav-link" href="/api">Endpoints overview</a>
</nav>
<main id="content">
<article>
<h1>Upgrading</h1>
<p>Stop the server before replacing the binary. The data directory is
migrated in place the first time the new version starts, so keep a
backup of it until the upgrade has been verified.</p>
<p>Settings that were renamed in this version are listed on the
<a href="release-notes.html">release notes</a> page. Old names are still
read but produce a warning at startup.</p>
<p>When the migration fails the server refuses to start and leaves the
data directory untouched, so restoring the backup is never required.</p>
</article>
</main>
<footer>Copyright Acme Corporation. All rights reserved.</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the article of a documentation page", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(guidePage, "https://docs.acme.dev/guide/upgrading")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Stop the server before replacing the binary.")
		assert.NotContains(t, result.ContentHTML, "Changelog")
		assert.NotContains(t, result.ContentHTML, "All rights reserved")
	})

	t.Run("reads title, site name and description", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(guidePage, "https://docs.acme.dev/guide/upgrading")

		require.NoError(t, err)
		assert.Contains(t, result.Title, "Upgrading")
		assert.Equal(t, "Acme Docs", result.SiteName)
		assert.Equal(t, "Moving between major versions.", result.Description)
	})

	t.Run("resolves relative links against the page URL", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(guidePage, "https://docs.acme.dev/guide/upgrading")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "https://docs.acme.dev/guide/release-notes.html")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract("", "")

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})

	t.Run("rejects an unparsable page URL", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract(guidePage, "://docs")

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})

	t.Run("reports pages without content as not found", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract(`<html><head><title>Empty</title></head><body></body></html>`, "")

		assert.Equal(t, docsite.ENOTFOUND, docsite.ErrorCode(err))
	})
}
