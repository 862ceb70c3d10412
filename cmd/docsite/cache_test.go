package main_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists and removes documents cached by earlier runs", func(t *testing.T) {
		t.Parallel()

		root := writeSite(t)
		db := filepath.Join(t.TempDir(), "cache.db")

		_, err := run(t, "", "--root", root, "--cache", db, "render", "deploy")
		require.NoError(t, err)

		out, err := run(t, "", "--root", root, "--cache", db, "cache", "ls")
		require.NoError(t, err)
		assert.Contains(t, out, "deploy")
		assert.Contains(t, out, "Deploying")

		out, err = run(t, "", "--root", root, "--cache", db, "cache", "rm", "deploy")
		require.NoError(t, err)
		assert.Equal(t, "Removed deploy\n", out)

		out, err = run(t, "", "--root", root, "--cache", db, "cache", "ls")
		require.NoError(t, err)
		assert.Equal(t, "No cached documents.\n", out)
	})

	t.Run("returns not found when removing an uncached document", func(t *testing.T) {
		t.Parallel()

		db := filepath.Join(t.TempDir(), "cache.db")

		_, err := run(t, "", "--root", writeSite(t), "--cache", db, "cache", "rm", "index")

		assert.Equal(t, docsite.ENOTFOUND, docsite.ErrorCode(err))
	})

	t.Run("requires a cache database", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "", "--root", writeSite(t), "cache", "ls")

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})
}
