package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rankTestJob = `Senior Product Manager

Requirements
5+ years of product management experience required.
Deep product strategy and sql reporting skills.
`

const rankTestKeywords = `[
  {"text": "product strategy", "role": "core"},
  {"text": "sql", "role": "important"},
  {"text": "5+ years of product management experience", "role": "core"}
]`

// lexicalOnlyEnv clears the API key so runs never reach the embedding
// service. The empty entry goes first because a Go child process keeps the
// first occurrence of a duplicated key.
func lexicalOnlyEnv() []string {
	env := []string{"GEMINI_API_KEY="}
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "GEMINI_API_KEY=") {
			env = append(env, kv)
		}
	}
	return env
}

func writeRankFixtures(t *testing.T) (keywordsPath, jobPath, outDir string) {
	t.Helper()
	tmpDir := t.TempDir()

	keywordsPath = filepath.Join(tmpDir, "keywords.json")
	require.NoError(t, os.WriteFile(keywordsPath, []byte(rankTestKeywords), 0644))

	jobPath = filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte(rankTestJob), 0644))

	outDir = filepath.Join(tmpDir, "output")
	return keywordsPath, jobPath, outDir
}

func TestRankCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --keywords",
			args:        []string{"rank", "--job", "job.txt"},
			errorString: "required",
		},
		{
			name:        "Missing --job",
			args:        []string{"rank", "--keywords", "keywords.json"},
			errorString: "required",
		},
		{
			name:        "Missing both",
			args:        []string{"rank"},
			errorString: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestRankCommand_MissingKeywordsFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	_, jobPath, outDir := writeRankFixtures(t)

	cmd := exec.Command(binaryPath, "rank",
		"--keywords", "/nonexistent/keywords.json",
		"--job", jobPath,
		"--out", outDir)
	cmd.Env = lexicalOnlyEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "loading keywords failed")
}

func TestRankCommand_OutputFilesExist(t *testing.T) {
	binaryPath := getBinaryPath(t)
	keywordsPath, jobPath, outDir := writeRankFixtures(t)

	cmd := exec.Command(binaryPath, "rank",
		"--keywords", keywordsPath,
		"--job", jobPath,
		"--out", outDir)
	cmd.Env = lexicalOnlyEnv()
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	// Without an API key the run degrades to lexical-only analysis
	assert.Contains(t, string(output), "no API key provided")

	analysisContent, err := os.ReadFile(filepath.Join(outDir, "keyword_analysis.json"))
	require.NoError(t, err)
	assert.Contains(t, string(analysisContent), "product strategy")
	assert.Contains(t, string(analysisContent), "5+ years of product management experience")

	checklistContent, err := os.ReadFile(filepath.Join(outDir, "keyword-checklist.md"))
	require.NoError(t, err)
	assert.Contains(t, string(checklistContent), "Knockout Requirements")
}

func TestRankCommand_CreatesOutputDirectory(t *testing.T) {
	binaryPath := getBinaryPath(t)
	keywordsPath, jobPath, _ := writeRankFixtures(t)

	// Output directory doesn't exist yet
	outDir := filepath.Join(t.TempDir(), "new", "output", "dir")

	cmd := exec.Command(binaryPath, "rank",
		"--keywords", keywordsPath,
		"--job", jobPath,
		"--out", outDir)
	cmd.Env = lexicalOnlyEnv()
	output, err := cmd.CombinedOutput()
	assert.NoError(t, err, "command should succeed and create directory: %s", string(output))

	_, err = os.Stat(outDir)
	assert.NoError(t, err, "output directory should be created")
}

func TestRankCommand_SummaryTable(t *testing.T) {
	binaryPath := getBinaryPath(t)
	keywordsPath, jobPath, outDir := writeRankFixtures(t)

	cmd := exec.Command(binaryPath, "rank",
		"--keywords", keywordsPath,
		"--job", jobPath,
		"--out", outDir,
		"--summary")
	cmd.Env = lexicalOnlyEnv()
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", string(output))

	assert.Contains(t, string(output), "KEYWORD")
	assert.Contains(t, string(output), "product strategy")
}

func TestRankCommand_ExitCode(t *testing.T) {
	binaryPath := getBinaryPath(t)
	keywordsPath, jobPath, outDir := writeRankFixtures(t)

	// Success case
	cmd := exec.Command(binaryPath, "rank",
		"--keywords", keywordsPath,
		"--job", jobPath,
		"--out", outDir)
	cmd.Env = lexicalOnlyEnv()
	err := cmd.Run()
	assert.NoError(t, err)

	// Failure case - invalid keywords file
	cmd = exec.Command(binaryPath, "rank",
		"--keywords", "/nonexistent/keywords.json",
		"--job", jobPath,
		"--out", outDir)
	cmd.Env = lexicalOnlyEnv()
	err = cmd.Run()
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.NotEqual(t, 0, exitError.ExitCode())
	} else {
		assert.Error(t, err)
	}
}
