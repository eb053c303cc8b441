package ignore

import "strings"

// Placeholder bytes keep '**' constructs intact while the single-star
// pass rewrites the rest of the pattern.
const (
	tokenDoubleStarMiddle   = "\x00M"
	tokenDoubleStarTrailing = "\x00T"
	tokenDoubleStarLeading  = "\x00L"
)

// escapeSpecialChars escapes regex special characters except for '*', '?', and '/'.
func escapeSpecialChars(pattern string) string {
	const specialChars = `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// stashDoubleStars swaps '**' constructs for placeholder tokens.
func stashDoubleStars(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "/**/", tokenDoubleStarMiddle)
	if strings.HasSuffix(pattern, "/**") {
		pattern = strings.TrimSuffix(pattern, "/**") + tokenDoubleStarTrailing
	}
	if strings.HasPrefix(pattern, "**/") {
		pattern = tokenDoubleStarLeading + strings.TrimPrefix(pattern, "**/")
	}
	return pattern
}

// wildcardToRegex converts the remaining '*' and '?' wildcards and expands
// the stashed '**' tokens into their regex equivalents.
func wildcardToRegex(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "*", `[^/]*`)
	pattern = strings.ReplaceAll(pattern, "?", `[^/]`)
	pattern = strings.ReplaceAll(pattern, tokenDoubleStarMiddle, `(/|/.+/)`)
	pattern = strings.ReplaceAll(pattern, tokenDoubleStarTrailing, `(/.*)?`)
	pattern = strings.ReplaceAll(pattern, tokenDoubleStarLeading, `(.*/)?`)
	return pattern
}

// anchorPattern anchors the regex to the full relative path. A leading '/'
// pins the pattern to the root; a trailing '/' restricts it to directories
// and everything inside them.
func anchorPattern(pattern string, originalPattern string) string {
	prefix := `^(|.*/)`
	if strings.HasPrefix(originalPattern, "/") {
		prefix = `^`
		pattern = strings.TrimPrefix(pattern, "/")
	}
	if strings.HasSuffix(originalPattern, "/") {
		return prefix + pattern + `.*$`
	}
	return prefix + pattern + `(/.*)?$`
}
