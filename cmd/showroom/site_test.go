package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteBuildCommand(t *testing.T) {
	home := isolateHome(t)
	out := filepath.Join(home, "public")

	stdout, _, err := executeCommand(t, "site", "build", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 8 files (2 listing pages, 6 components)")

	for _, rel := range []string{"index.html", "page/2/index.html", "components/exponential-pagination/index.html"} {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}
}

func TestSiteBuildCommand_PageSize(t *testing.T) {
	home := isolateHome(t)
	out := filepath.Join(home, "public")

	stdout, _, err := executeCommand(t, "site", "build", "--out", out, "--page-size", "10")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 7 files (1 listing pages, 6 components)")

	_, err = os.Stat(filepath.Join(out, "page"))
	assert.True(t, os.IsNotExist(err))

	_, _, err = executeCommand(t, "site", "build", "--out", out, "--page-size", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 0, want >= 1")
}
