package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand_AllDocuments(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "list",
		"--chunks", "testdata/chunks.jsonl",
		"--metadata", "testdata/doc_metadata.json")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "list failed: %s", string(output))

	assert.Contains(t, string(output), "gpt_system_card")
	assert.Contains(t, string(output), "nist_framework")
}

func TestListCommand_FiltersByType(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "list",
		"--chunks", "testdata/chunks.jsonl",
		"--metadata", "testdata/doc_metadata.json",
		"--type", "framework")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "list failed: %s", string(output))

	assert.Contains(t, string(output), "nist_framework")
	assert.NotContains(t, string(output), "gpt_system_card")
}
