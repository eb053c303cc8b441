// Package manifest detects a project's manifest dialect and extracts a
// human-readable metadata block from it.
package manifest

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Kind identifies the manifest dialect a project was detected as.
type Kind int

const (
	Unknown Kind = iota
	Rust
	Python
)

func (k Kind) String() string {
	switch k {
	case Rust:
		return "Rust"
	case Python:
		return "Python"
	default:
		return "Unknown"
	}
}

// Overrides point detection at explicit manifest files. An override that
// fails to extract is skipped and detection falls through to the walk.
type Overrides struct {
	CargoToml string
	Pyproject string
}

// probe is one manifest candidate checked at every directory level.
type probe struct {
	file    string
	kind    Kind
	extract func(string) (string, bool)
}

var probes = []probe{
	{"Cargo.toml", Rust, ExtractCargoInfo},
	{"pyproject.toml", Python, ExtractPyprojectInfo},
	{"setup.py", Python, ExtractSetupPyInfo},
	{"requirements.txt", Python, ExtractRequirementsInfo},
}

// Detect resolves the project kind and metadata block for the given start
// path. Each directory level is probed for Cargo.toml, pyproject.toml,
// setup.py and requirements.txt in that order before moving to the parent;
// the first file that extracts successfully decides. A file that exists
// but cannot be parsed counts as not found. Reaching the filesystem root
// without a hit yields Unknown with an empty block.
func Detect(startPath string, overrides Overrides, logger *zap.Logger) (Kind, string) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if overrides.CargoToml != "" {
		if info, ok := ExtractCargoInfo(overrides.CargoToml); ok {
			return Rust, info
		}
		logger.Warn("Cargo.toml override did not yield project info",
			zap.String("path", overrides.CargoToml))
	}
	if overrides.Pyproject != "" {
		if info, ok := ExtractPyprojectInfo(overrides.Pyproject); ok {
			return Python, info
		}
		logger.Warn("pyproject.toml override did not yield project info",
			zap.String("path", overrides.Pyproject))
	}

	dir := startDir(startPath)
	for {
		for _, p := range probes {
			if info, ok := p.extract(filepath.Join(dir, p.file)); ok {
				logger.Debug("Detected project manifest",
					zap.String("file", p.file),
					zap.String("dir", dir))
				return p.kind, info
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	logger.Debug("No project manifest found", zap.String("startPath", startPath))
	return Unknown, ""
}

// startDir picks the directory detection starts from: the path itself for
// a directory, its parent for a file.
func startDir(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return filepath.Dir(abs)
	}
	return abs
}
