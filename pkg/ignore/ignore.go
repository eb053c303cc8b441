// Package ignore matches relative paths against gitignore-style patterns
// collected from .clipignore files and command-line excludes.
package ignore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/umisama/go-regexpcache"
	"go.uber.org/zap"
)

// Parser matches slash-separated relative paths against ignore patterns.
// Directory paths carry a trailing slash so directory-only patterns can
// tell them apart from files.
type Parser interface {
	MatchesPath(path string) bool
	MatchesPathWithPattern(path string) (bool, *Pattern)
}

// Pattern is one compiled ignore rule plus its source metadata.
type Pattern struct {
	Regex  *regexp.Regexp // Compiled regular expression for the pattern.
	Negate bool           // Indicates if the pattern is a negation (starts with '!').
	LineNo int            // Line number in the source (1-based).
	Line   string         // Original pattern line.
}

// ClipIgnore is an ordered collection of ignore patterns. The last
// matching pattern decides; a negation re-includes the path.
type ClipIgnore struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New returns an empty matcher.
func New(logger *zap.Logger) *ClipIgnore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClipIgnore{
		patterns: []*Pattern{},
		logger:   logger,
	}
}

// Load merges ignore sources into one matcher, in precedence order: the
// global file named by globalPath (if any), a .clipignore file in each
// root directory, then the extra pattern lines from the command line.
func Load(globalPath string, roots []string, extra []string, logger *zap.Logger) *ClipIgnore {
	ci := New(logger)

	if globalPath != "" {
		if absPath, err := filepath.Abs(globalPath); err == nil {
			if err := ci.CompileIgnoreFile(absPath); err != nil {
				ci.logger.Warn("Failed to load global ignore file",
					zap.String("file", absPath), zap.Error(err))
			}
		}
	}

	for _, root := range roots {
		path := filepath.Join(root, ".clipignore")
		if err := ci.CompileIgnoreFile(path); err != nil {
			ci.logger.Warn("Failed to load ignore file",
				zap.String("file", path), zap.Error(err))
		}
	}

	ci.CompileIgnoreLines(extra...)
	return ci
}

// CompileIgnoreLines compiles a set of pattern lines into the matcher.
func (ci *ClipIgnore) CompileIgnoreLines(lines ...string) {
	for i, line := range lines {
		lineNo := len(ci.patterns) + i + 1
		regex, negate := parsePatternLine(line, lineNo, ci.logger)
		if regex == nil {
			continue
		}
		ci.patterns = append(ci.patterns, &Pattern{
			Regex:  regex,
			Negate: negate,
			LineNo: lineNo,
			Line:   line,
		})
	}
}

// CompileIgnoreFile reads an ignore file and compiles its lines into the
// matcher. A missing file is not an error.
func (ci *ClipIgnore) CompileIgnoreFile(filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	ci.logger.Debug("Loading ignore file", zap.String("filePath", filePath))
	for i, line := range strings.Split(string(content), "\n") {
		regex, negate := parsePatternLine(line, i+1, ci.logger)
		if regex == nil {
			continue
		}
		ci.patterns = append(ci.patterns, &Pattern{
			Regex:  regex,
			Negate: negate,
			LineNo: i + 1,
			Line:   line,
		})
	}
	return nil
}

// MatchesPath reports whether the path matches the ignore patterns.
func (ci *ClipIgnore) MatchesPath(path string) bool {
	matches, _ := ci.MatchesPathWithPattern(path)
	return matches
}

// MatchesPathWithPattern reports whether the path is ignored and returns
// the pattern that decided it.
func (ci *ClipIgnore) MatchesPathWithPattern(path string) (bool, *Pattern) {
	normalized := filepath.ToSlash(path)

	matched := false
	var matchedPattern *Pattern

	for _, pattern := range ci.patterns {
		if !pattern.Regex.MatchString(normalized) {
			continue
		}
		ci.logger.Debug("Path matches ignore pattern",
			zap.String("path", normalized),
			zap.String("pattern", pattern.Line),
			zap.Bool("negate", pattern.Negate))

		matched = !pattern.Negate
		matchedPattern = pattern
	}

	return matched, matchedPattern
}

// parsePatternLine compiles a single pattern line. It returns nil for
// blank lines and comments, and for patterns that fail to compile.
func parsePatternLine(line string, lineNo int, logger *zap.Logger) (*regexp.Regexp, bool) {
	trimmedLine := strings.TrimSpace(line)

	// Ignore empty lines and comments.
	if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
		return nil, false
	}

	// Check for negation.
	negate := false
	if strings.HasPrefix(trimmedLine, "!") {
		negate = true
		trimmedLine = strings.TrimPrefix(trimmedLine, "!")
	}

	// Unescape literal leading '#' and '!'.
	if strings.HasPrefix(trimmedLine, `\#`) || strings.HasPrefix(trimmedLine, `\!`) {
		trimmedLine = trimmedLine[1:]
	}

	pattern := escapeSpecialChars(trimmedLine)
	pattern = stashDoubleStars(pattern)
	pattern = wildcardToRegex(pattern)
	pattern = anchorPattern(pattern, trimmedLine)

	compiled, err := regexpcache.Compile(pattern)
	if err != nil {
		logger.Error("Invalid ignore pattern",
			zap.String("pattern", trimmedLine),
			zap.Int("lineNo", lineNo),
			zap.Error(err))
		return nil, false
	}

	return compiled, negate
}
