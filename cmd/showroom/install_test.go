package main

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ellipsisInstall = "npx shadcn@latest add https://imaimai-ui.vercel.app/r/ellipsis-pagination.json"

func TestInstallCommand_PrintsCommand(t *testing.T) {
	isolateHome(t)

	stdout, stderr, err := executeCommand(t, "install", "ellipsis-pagination")
	require.NoError(t, err)

	assert.Equal(t, ellipsisInstall+"\n", stdout)
	assert.NotContains(t, stderr, "\x1b]52")
}

func TestInstallCommand_CopyWritesOSC52(t *testing.T) {
	isolateHome(t)
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	stdout, stderr, err := executeCommand(t, "install", "ellipsis-pagination", "--copy")
	require.NoError(t, err)

	assert.Equal(t, ellipsisInstall+"\n", stdout)
	assert.Contains(t, stderr, "\x1b]52;c;"+base64.StdEncoding.EncodeToString([]byte(ellipsisInstall)))
}

func TestInstallCommand_UsesConfiguredRegistry(t *testing.T) {
	home := isolateHome(t)
	path := writeConfig(t, home, "registry_url: https://ui.example.com/\n")

	stdout, _, err := executeCommand(t, "install", "exponential-pagination", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "npx shadcn@latest add https://ui.example.com/r/exponential-pagination.json\n", stdout)
}
