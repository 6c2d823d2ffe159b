package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sentinelJSON = "{\n  \"title\": \"Error extracting title\",\n  \"outline\": []\n}\n"

// execute runs the root command with args and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	fileOutput, fileStrict = "", false
	batchInput, batchOutput, batchWorkers, batchTimeout = "", "", 0, 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--log-level", "disabled"))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "outline "+version+"\n", out)
}

func TestFileWritesErrorResultForMissingInput(t *testing.T) {
	out, err := execute(t, "file", filepath.Join(t.TempDir(), "missing.pdf"))
	require.NoError(t, err)
	assert.Equal(t, sentinelJSON, out)
}

func TestFileOutputFlag(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4\nnot really"), 0o644))
	dst := filepath.Join(dir, "out", "broken.json")

	_, err := execute(t, "file", src, "--output", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, sentinelJSON, string(data))
}

func TestFileStrict(t *testing.T) {
	_, err := execute(t, "file", "--strict", filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	in, out := t.TempDir(), filepath.Join(t.TempDir(), "results")
	require.NoError(t, os.WriteFile(filepath.Join(in, "a.pdf"), []byte("%PDF-1.4\n"), 0o644))

	stdout, err := execute(t, "batch", "--input", in, "--output", out, "--workers", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Processed 1 PDF files (1 failed)")

	data, err := os.ReadFile(filepath.Join(out, "a.json"))
	require.NoError(t, err)
	assert.Equal(t, sentinelJSON, string(data))
}

func TestBatchCommandMissingInput(t *testing.T) {
	_, err := execute(t, "batch", "--input", filepath.Join(t.TempDir(), "nope"), "--output", t.TempDir())
	assert.Error(t, err)
}
