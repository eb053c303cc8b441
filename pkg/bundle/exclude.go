package bundle

import (
	"path/filepath"
	"strings"
)

// excludedDirPatterns are directory names never descended into. A leading
// '*' matches by name suffix; anything else must match exactly.
var excludedDirPatterns = []string{
	".git", "target", "node_modules", ".vscode", ".idea",
	".github", "dist", "build", "out", "__pycache__",
	".pytest_cache", ".mypy_cache", ".tox", ".eggs",
	"*.egg-info", ".ipynb_checkpoints", "venv", "env", ".env",
}

// excludedExtensions are file extensions never included, compared
// case-insensitively.
var excludedExtensions = map[string]struct{}{
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {},
	".o": {}, ".obj": {}, ".a": {}, ".lib": {}, ".bin": {},
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".svg": {}, ".ico": {},
	".woff": {}, ".woff2": {}, ".ttf": {}, ".eot": {},
	".pyc": {}, ".pyd": {}, ".pyo": {}, ".class": {}, ".jar": {},
}

// isExcludedDir reports whether a directory with the given name is always
// pruned from traversal.
func isExcludedDir(name string) bool {
	for _, pattern := range excludedDirPatterns {
		if rest, ok := strings.CutPrefix(pattern, "*"); ok {
			if strings.HasSuffix(name, rest) {
				return true
			}
			continue
		}
		if name == pattern {
			return true
		}
	}
	return false
}

// isExcludedExtension reports whether the file name carries an extension
// that is never included.
func isExcludedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	_, ok := excludedExtensions[ext]
	return ok
}
