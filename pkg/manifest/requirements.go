package manifest

import (
	"os"
	"strings"
	"unicode/utf8"
)

// ExtractRequirementsInfo renders the metadata block for a
// requirements.txt file. Blank lines and comment lines are dropped and
// trailing comments stripped; a file left with no entries still succeeds
// with just the project type line.
func ExtractRequirementsInfo(path string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil || !utf8.Valid(content) {
		return "", false
	}

	var info strings.Builder
	info.WriteString("Project Type: Python (requirements.txt)\n")

	var dependencies []string
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if idx := strings.IndexByte(trimmed, '#'); idx >= 0 {
			trimmed = strings.TrimSpace(trimmed[:idx])
		}
		if trimmed != "" {
			dependencies = append(dependencies, trimmed)
		}
	}

	if len(dependencies) > 0 {
		info.WriteString("\nDependencies:\n")
		for _, dep := range dependencies {
			info.WriteString("- " + dep + "\n")
		}
	}

	return info.String(), true
}
