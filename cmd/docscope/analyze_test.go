package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCommand_BadConfigPath(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze", "--config", "does_not_exist.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load config")
}

func TestAnalyzeCommand_WritesArtifacts(t *testing.T) {
	binaryPath := getBinaryPath(t)

	outDir := filepath.Join(t.TempDir(), "results")
	cmd := exec.Command(binaryPath, "analyze",
		"--chunks", "testdata/chunks.jsonl",
		"--metadata", "testdata/doc_metadata.json",
		"--schema", "testdata/category_schema.json",
		"--out-dir", outDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "analyze failed: %s", string(output))

	assert.Contains(t, string(output), "Analysis complete")

	for _, name := range []string{
		"framework_vs_artifact_comparison.json",
		"gap_analysis_summary.json",
		"policy_recommendations.json",
		"complete_analysis.json",
	} {
		_, statErr := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, statErr, "expected artifact %s", name)
	}
}

func TestAnalyzeCommand_ConfigFileWithFlagOverride(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "results")

	// Config points at the fixtures; the out-dir flag overrides the
	// config value.
	configFile := filepath.Join(tmpDir, "config.json")
	configJSON := `{
  "chunks": "testdata/chunks.jsonl",
  "metadata": "testdata/doc_metadata.json",
  "category_schema": "testdata/category_schema.json",
  "output_dir": "ignored_dir"
}`
	require.NoError(t, os.WriteFile(configFile, []byte(configJSON), 0644))

	cmd := exec.Command(binaryPath, "analyze",
		"--config", configFile,
		"--out-dir", outDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "analyze failed: %s", string(output))

	_, statErr := os.Stat(filepath.Join(outDir, "complete_analysis.json"))
	assert.NoError(t, statErr)

	_, statErr = os.Stat(filepath.Join(tmpDir, "ignored_dir"))
	assert.True(t, os.IsNotExist(statErr), "config output_dir should be overridden")
}
