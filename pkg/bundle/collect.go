package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/c2h5oh/datasize"
	"go.uber.org/zap"

	"codeclip/pkg/ignore"
)

// CollectFiles gathers the text files under the given paths, applying the
// fixed exclusion rules, the extra ignore patterns and the size limit.
// Per-path failures are logged and skipped; the walk never aborts.
func CollectFiles(paths []string, extra ignore.Parser, maxFileSizeKB int, logger *zap.Logger) []FileEntry {
	var entries []FileEntry
	logger.Debug("Starting file collection", zap.Int("pathCount", len(paths)))

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			logger.Warn("Path does not exist or cannot be accessed",
				zap.String("path", path), zap.Error(err))
			continue
		}

		if info.IsDir() {
			fmt.Printf("Processing directory: %s\n", path)
			entries = append(entries, collectDir(path, extra, maxFileSizeKB, logger)...)
			continue
		}

		// A single file argument is collected relative to its parent.
		if entry, ok := readEntry(path, filepath.Dir(path), extra, maxFileSizeKB, logger); ok {
			entries = append(entries, entry)
		}
	}

	logger.Debug("Completed file collection", zap.Int("fileCount", len(entries)))
	return entries
}

// collectDir walks one directory root, pruning excluded directories. The
// fixed name rules apply to the root itself; extra patterns only to paths
// below it.
func collectDir(root string, extra ignore.Parser, maxFileSizeKB int, logger *zap.Logger) []FileEntry {
	var entries []FileEntry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal",
				zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if isExcludedDir(d.Name()) {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			if path != root && extra.MatchesPath(relTo(root, path)+"/") {
				logger.Debug("Skipping ignored directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if entry, ok := readEntry(path, root, extra, maxFileSizeKB, logger); ok {
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		logger.Warn("Failed to traverse directory", zap.String("dir", root), zap.Error(err))
	}

	return entries
}

// readEntry applies the file filters and reads one candidate file. The
// bool reports whether the file was collected.
func readEntry(path, root string, extra ignore.Parser, maxFileSizeKB int, logger *zap.Logger) (FileEntry, bool) {
	if isExcludedExtension(path) {
		return FileEntry{}, false
	}

	relPath := relTo(root, path)
	if extra.MatchesPath(relPath) {
		logger.Debug("Skipping ignored file", zap.String("path", path))
		return FileEntry{}, false
	}

	info, err := os.Stat(path)
	if err != nil {
		logger.Warn("Failed to stat file", zap.String("path", path), zap.Error(err))
		return FileEntry{}, false
	}
	if info.IsDir() {
		// Symlink to a directory; not followed.
		return FileEntry{}, false
	}
	if info.Size() > int64(maxFileSizeKB)*1024 {
		fmt.Printf("Skipping large file: %s (%s)\n",
			path, datasize.ByteSize(info.Size()).HumanReadable())
		return FileEntry{}, false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Error reading file", zap.String("path", path), zap.Error(err))
		return FileEntry{}, false
	}
	if !utf8.Valid(content) {
		logger.Warn("Skipping file with non-text content", zap.String("path", path))
		return FileEntry{}, false
	}

	return FileEntry{Path: relPath, Content: string(content)}, true
}

// relTo returns the slash-separated path of target relative to root, with
// leading separators trimmed. Paths that escape the root fall back to the
// cleaned target path.
func relTo(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		rel = filepath.Clean(target)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		rel = filepath.ToSlash(filepath.Clean(target))
	}
	return strings.TrimLeft(rel, `/\`)
}
