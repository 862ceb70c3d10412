package bluemonday_test

import (
	"testing"

	"github.com/fwojciec/docsite/bluemonday"
	"github.com/stretchr/testify/assert"
)

func TestSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	t.Run("removes scripts and event handlers", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		out := s.Sanitize(`<p onclick="steal()">hi</p><script>alert(1)</script><a href="javascript:alert(1)">x</a>`)

		assert.NotContains(t, out, "script")
		assert.NotContains(t, out, "onclick")
		assert.NotContains(t, out, "javascript:")
		assert.Contains(t, out, "<p>hi</p>")
	})

	t.Run("keeps heading ids and anchors", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		out := s.Sanitize(`<h2 id="setup"><a class="header-anchor" href="#setup" aria-hidden="true">🔗</a>Setup</h2>`)

		assert.Contains(t, out, `id="setup"`)
		assert.Contains(t, out, `class="header-anchor"`)
		assert.Contains(t, out, `href="#setup"`)
		assert.Contains(t, out, `aria-hidden="true"`)
	})

	t.Run("keeps highlighted code classes", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		out := s.Sanitize(`<pre class="chroma"><code class="language-go"><span class="kd">func</span></code></pre>`)

		assert.Equal(t, `<pre class="chroma"><code class="language-go"><span class="kd">func</span></code></pre>`, out)
	})

	t.Run("keeps embedded players", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		out := s.Sanitize(`<div class="video-container"><iframe src="https://www.youtube.com/embed/abc123" loading="lazy" allow="accelerometer; encrypted-media; gyroscope; picture-in-picture" allowfullscreen="" referrerpolicy="no-referrer-when-downgrade"></iframe></div>`)

		assert.Contains(t, out, `<div class="video-container"><iframe`)
		assert.Contains(t, out, `src="https://www.youtube.com/embed/abc123"`)
		assert.Contains(t, out, `loading="lazy"`)
		assert.Contains(t, out, `referrerpolicy="no-referrer-when-downgrade"`)
	})

	t.Run("removes frame sources that are not http", func(t *testing.T) {
		t.Parallel()

		s := bluemonday.NewSanitizer()

		out := s.Sanitize(`<iframe src="javascript:alert(1)"></iframe>`)

		assert.NotContains(t, out, "javascript")
	})
}
