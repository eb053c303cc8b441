package bundle

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"codeclip/pkg/ignore"
)

func writeTestFile(t *testing.T, root, rel string, content []byte) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func collectedPaths(entries []FileEntry) []string {
	paths := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = entry.Path
	}
	return paths
}

func TestCollectFilesSkipsExcludedDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "src/main.go", []byte("package main\n"))
	writeTestFile(t, root, ".git/config", []byte("[core]\n"))
	writeTestFile(t, root, "target/debug/out.txt", []byte("x"))
	writeTestFile(t, root, "node_modules/pkg/index.js", []byte("x"))
	writeTestFile(t, root, "demo.egg-info/PKG-INFO", []byte("x"))

	entries := CollectFiles([]string{root}, ignore.New(nil), DefaultMaxFileSizeKB, zap.NewNop())

	assert.Equal(t, []string{"src/main.go"}, collectedPaths(entries))
}

func TestCollectFilesSizeBoundary(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "at-limit.txt", bytes.Repeat([]byte("a"), 100*1024))
	writeTestFile(t, root, "over-limit.txt", bytes.Repeat([]byte("b"), 100*1024+1))

	entries := CollectFiles([]string{root}, ignore.New(nil), DefaultMaxFileSizeKB, zap.NewNop())

	assert.Equal(t, []string{"at-limit.txt"}, collectedPaths(entries))
}

func TestCollectFilesSkipsBinaryContent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "logo.png", []byte{0x89, 0x50, 0x4e, 0x47})
	writeTestFile(t, root, "data.blob", []byte{0xff, 0xfe, 0x00, 0x01})
	writeTestFile(t, root, "ok.txt", []byte("text\n"))

	entries := CollectFiles([]string{root}, ignore.New(nil), DefaultMaxFileSizeKB, zap.NewNop())

	assert.Equal(t, []string{"ok.txt"}, collectedPaths(entries))
}

func TestCollectFilesSingleFileArgument(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := writeTestFile(t, root, "notes.md", []byte("hi\n"))

	entries := CollectFiles([]string{path}, ignore.New(nil), DefaultMaxFileSizeKB, zap.NewNop())

	require.Len(t, entries, 1)
	assert.Equal(t, "notes.md", entries[0].Path)
	assert.Equal(t, "hi\n", entries[0].Content)
}

func TestCollectFilesMissingPathSkipped(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "a.txt", []byte("a"))

	missing := filepath.Join(root, "nope")
	entries := CollectFiles([]string{missing, root}, ignore.New(nil), DefaultMaxFileSizeKB, zap.NewNop())

	assert.Equal(t, []string{"a.txt"}, collectedPaths(entries))
}

func TestCollectFilesExtraPatterns(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "src/app.go", []byte("x"))
	writeTestFile(t, root, "src/app_test.go", []byte("x"))
	writeTestFile(t, root, "vendor/dep/a.go", []byte("x"))

	matcher := ignore.New(nil)
	matcher.CompileIgnoreLines("*_test.go", "vendor/")

	entries := CollectFiles([]string{root}, matcher, DefaultMaxFileSizeKB, zap.NewNop())

	assert.Equal(t, []string{"src/app.go"}, collectedPaths(entries))
}

func TestCollectFilesMultipleRoots(t *testing.T) {
	t.Parallel()

	first := t.TempDir()
	writeTestFile(t, first, "a.txt", []byte("a"))
	second := t.TempDir()
	writeTestFile(t, second, "sub/b.txt", []byte("b"))

	entries := CollectFiles([]string{first, second}, ignore.New(nil), DefaultMaxFileSizeKB, zap.NewNop())

	assert.Equal(t, []string{"a.txt", "sub/b.txt"}, collectedPaths(entries))
}
