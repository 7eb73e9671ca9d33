package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJobFixture(t *testing.T, content string) string {
	t.Helper()
	jobPath := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte(content), 0644))
	return jobPath
}

func TestExtractExperienceCommand_MissingJobFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract-experience")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestExtractExperienceCommand_TextOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jobPath := writeJobFixture(t, "Requires 7+ years of product management experience.\n")

	cmd := exec.Command(binaryPath, "extract-experience", "--job", jobPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	assert.Contains(t, string(output), "Found 1 experience requirements:")
	assert.Contains(t, string(output), "7+ years of product management experience (years: 7+, role: core)")
}

func TestExtractExperienceCommand_JSONOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jobPath := writeJobFixture(t, "Requires 7+ years of product management experience.\n")

	cmd := exec.Command(binaryPath, "extract-experience", "--job", jobPath, "--json")
	output, err := cmd.Output()
	require.NoError(t, err)

	var reqs []struct {
		FullText string `json:"full_text"`
		Years    string `json:"years"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(output, &reqs))
	require.Len(t, reqs, 1)
	assert.Equal(t, "7+ years of product management experience", reqs[0].FullText)
	assert.Equal(t, "7+", reqs[0].Years)
	assert.Equal(t, "core", reqs[0].Role)
}

func TestExtractExperienceCommand_JSONOutputEmpty(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jobPath := writeJobFixture(t, "We value curiosity and kindness.\n")

	cmd := exec.Command(binaryPath, "extract-experience", "--job", jobPath, "--json")
	output, err := cmd.Output()
	require.NoError(t, err)

	var reqs []json.RawMessage
	require.NoError(t, json.Unmarshal(output, &reqs))
	assert.Empty(t, reqs)
}

func TestExtractExperienceCommand_NoRequirements(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jobPath := writeJobFixture(t, "We value curiosity and kindness.\n")

	cmd := exec.Command(binaryPath, "extract-experience", "--job", jobPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Contains(t, string(output), "No experience requirements found.")
}

func TestExtractExperienceCommand_InvalidJobFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract-experience", "--job", "/nonexistent/job.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load job posting")
}
