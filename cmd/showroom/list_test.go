package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand_TableOutput(t *testing.T) {
	isolateHome(t)

	stdout, _, err := executeCommand(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "SLUG"))
	assert.Contains(t, lines[0], "CATEGORY")
	assert.True(t, strings.HasPrefix(lines[1], "multi-select-combobox"))
	assert.True(t, strings.HasPrefix(lines[6], "image-comparison-slider"))

	// Buffers are not terminals, so the ASCII live marker is used.
	assert.Contains(t, stdout, "yes (ellipsis)")
	assert.Contains(t, stdout, "yes (exponential)")
	assert.NotContains(t, stdout, "●")
}

func TestListCommand_JSONOutput(t *testing.T) {
	isolateHome(t)

	stdout, _, err := executeCommand(t, "list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))

	assert.Equal(t, "1.0", payload.Version)
	assert.Equal(t, 6, payload.Count)
	require.Len(t, payload.Components, 6)
	assert.Equal(t, "ellipsis-pagination", payload.Components[3].Slug)
	assert.Equal(t, "ellipsis", payload.Components[3].Widget)
	assert.Equal(t, 5, payload.Components[3].Demos)
}

func TestListCommand_RejectsUnknownTheme(t *testing.T) {
	isolateHome(t)

	_, _, err := executeCommand(t, "list", "--theme", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "sepia"`)
	assert.Contains(t, err.Error(), "Suggestion: Use --theme light or --theme dark.")
}

func TestListCommand_ExplicitConfigMustExist(t *testing.T) {
	home := isolateHome(t)

	_, _, err := executeCommand(t, "list", "--config", home+"/missing.yaml")
	require.Error(t, err)

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "list", cmdErr.operation)
}
