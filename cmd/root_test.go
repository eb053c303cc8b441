package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandStdout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello\n"), 0o600))

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&bytes.Buffer{})
	RootCmd.SetArgs([]string{dir, "--stdout"})

	require.NoError(t, RootCmd.Execute())

	assert.Contains(t, out.String(), "<project>")
	assert.Contains(t, out.String(), "<file path=\"hello.txt\">\nhello\n</file>")
	assert.Contains(t, out.String(), "</project>")
}

func TestRootCommandRequiresPaths(t *testing.T) {
	RootCmd.SetOut(&bytes.Buffer{})
	RootCmd.SetErr(&bytes.Buffer{})
	RootCmd.SetArgs([]string{})

	assert.Error(t, RootCmd.Execute())
}
