package main_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseCmd(t *testing.T) {
	t.Parallel()

	t.Run("navigates documents history and search results", func(t *testing.T) {
		t.Parallel()

		script := strings.Join([]string{
			"toc",
			"goto getting-started",
			"search rollback",
			"select 1",
			"back",
			"forward",
			"quit",
		}, "\n")

		out, err := run(t, script, "--root", writeSite(t), "browse")

		require.NoError(t, err)
		assert.Contains(t, out, "Loading index...")
		assert.Contains(t, out, "Welcome (index)")
		assert.Contains(t, out, "- Welcome (#welcome)\n  - Getting Started (#getting-started)\n")
		assert.Contains(t, out, "→ Getting Started (#getting-started)")
		assert.Contains(t, out, "  1. deploy › Rollback")
		assert.Contains(t, out, "Deploying (deploy)")
		assert.Contains(t, out, "→ Rollback (#rollback)")
		assert.Equal(t, 2, strings.Count(out, "Welcome (index)"))
		assert.Equal(t, 2, strings.Count(out, "Deploying (deploy)"))
		assert.NotContains(t, out, "🔗")
	})

	t.Run("opens the named document first", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "quit\n", "--root", writeSite(t), "browse", "deploy")

		require.NoError(t, err)
		assert.Contains(t, out, "Deploying (deploy)")
		assert.NotContains(t, out, "Welcome (index)")
	})

	t.Run("shows the error panel for a missing document", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "open missing\ntoc\n", "--root", writeSite(t), "browse")

		require.NoError(t, err)
		assert.Contains(t, out, "Error loading documentation\n  /docs/missing.md\n")
		assert.Contains(t, out, "No document loaded.")
	})

	t.Run("reports bad commands and arguments", func(t *testing.T) {
		t.Parallel()

		script := strings.Join([]string{
			"fly",
			"open",
			"select 1",
			"search welcome",
			"select 9",
			"goto nowhere",
			"help",
		}, "\n")

		out, err := run(t, script, "--root", writeSite(t), "browse")

		require.NoError(t, err)
		assert.Contains(t, out, `Unknown command "fly".`)
		assert.Contains(t, out, "usage: open <name>")
		assert.Contains(t, out, "No search results to select from.")
		assert.Contains(t, out, "Pick a result between 1 and")
		assert.Contains(t, out, `No heading "nowhere" in index.`)
		assert.Contains(t, out, "Commands:")
	})

	t.Run("stops at the ends of history", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "back\nforward\n", "--root", writeSite(t), "browse")

		require.NoError(t, err)
		assert.Contains(t, out, "No previous document.")
		assert.Contains(t, out, "No next document.")
	})
}
