package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsCommandStructure(t *testing.T) {
	assert.NotNil(t, fieldsCmd)
	assert.Equal(t, "fields", fieldsCmd.Use)
	assert.NotEmpty(t, fieldsCmd.Short)
	assert.NotNil(t, fieldsCmd.RunE)
}

func TestFieldsIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "fields" {
			found = true
			break
		}
	}
	assert.True(t, found, "fields command should be added to root command")
}

func TestRunFields(t *testing.T) {
	withFlags(t, []string{writeSampleLog(t)}, "", "", "")

	out, err := captureRun(t, runFields)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"@timestamp",
		"http_user_agent/os/name",
		"response_time",
		"url",
	}, lines)

	// Intermediate object paths are not groupable and must not be listed.
	assert.NotContains(t, lines, "http_user_agent")
	assert.NotContains(t, lines, "http_user_agent/os")
}

func TestRunFieldsMissingFileFails(t *testing.T) {
	withFlags(t, []string{"missing-a.log", "missing-b.log"}, "", "", "")

	_, err := captureRun(t, runFields)
	require.Error(t, err)
	// All missing sources are named at once.
	assert.Contains(t, err.Error(), "missing-a.log")
	assert.Contains(t, err.Error(), "missing-b.log")
}
