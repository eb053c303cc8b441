package manifest

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ExtractSetupPyInfo renders the metadata block for a setup.py file. The
// file is scanned for literal keyword arguments rather than parsed as
// Python, so dynamically computed values yield nothing. Any readable
// setup.py succeeds with at least the project type line.
func ExtractSetupPyInfo(path string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil || !utf8.Valid(content) {
		return "", false
	}
	src := string(content)

	var info strings.Builder
	info.WriteString("Project Type: Python (setup.py)\n")

	if name, ok := scanStringParam(src, "name"); ok {
		fmt.Fprintf(&info, "Project Name: %s\n", name)
	}
	if version, ok := scanStringParam(src, "version"); ok {
		fmt.Fprintf(&info, "Version: %s\n", version)
	}
	if description, ok := scanStringParam(src, "description"); ok {
		fmt.Fprintf(&info, "Description: %s\n", description)
	}

	if requires, ok := scanListParam(src, "install_requires"); ok && len(requires) > 0 {
		info.WriteString("\nDependencies:\n")
		for _, dep := range requires {
			fmt.Fprintf(&info, "- %s\n", dep)
		}
	}

	if extras, ok := scanDictParam(src, "extras_require"); ok && len(extras) > 0 {
		info.WriteString("\nOptional Dependencies:\n")
		for _, entry := range extras {
			fmt.Fprintf(&info, "Group '%s':\n", entry.group)
			for _, dep := range entry.deps {
				fmt.Fprintf(&info, "  - %s\n", dep)
			}
		}
	}

	return info.String(), true
}

// extrasGroup is one extras_require entry in source order.
type extrasGroup struct {
	group string
	deps  []string
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

func skipBlanks(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// scanStringParam finds the first `param = "value"` or `param: "value"`
// occurrence and returns the quoted value. The character before the key
// must not belong to an identifier, so `package_name` never matches
// `name`. Quotes inside the value are not handled; the capture ends at
// the first delimiter that opened it.
func scanStringParam(content, param string) (string, bool) {
	for idx := 0; ; {
		rel := strings.Index(content[idx:], param)
		if rel < 0 {
			return "", false
		}
		pos := idx + rel
		idx = pos + 1

		if pos > 0 && isIdentByte(content[pos-1]) {
			continue
		}
		i := skipBlanks(content, pos+len(param))
		if i >= len(content) || (content[i] != '=' && content[i] != ':') {
			continue
		}
		i = skipBlanks(content, i+1)
		if i >= len(content) || (content[i] != '"' && content[i] != '\'') {
			continue
		}
		delim := content[i]
		end := strings.IndexByte(content[i+1:], delim)
		if end < 0 {
			continue
		}
		return content[i+1 : i+1+end], true
	}
}

// scanListParam finds the first `param = [...]` occurrence and returns
// the parsed items.
func scanListParam(content, param string) ([]string, bool) {
	for idx := 0; ; {
		rel := strings.Index(content[idx:], param)
		if rel < 0 {
			return nil, false
		}
		pos := idx + rel
		idx = pos + 1

		if pos > 0 && isIdentByte(content[pos-1]) {
			continue
		}
		i := skipBlanks(content, pos+len(param))
		if i >= len(content) || content[i] != '=' {
			continue
		}
		i = skipBlanks(content, i+1)
		if i >= len(content) || content[i] != '[' {
			continue
		}
		return scanListItems(content[i+1:]), true
	}
}

// scanDictParam finds the first `param = {...}` occurrence and returns
// the parsed group entries.
func scanDictParam(content, param string) ([]extrasGroup, bool) {
	for idx := 0; ; {
		rel := strings.Index(content[idx:], param)
		if rel < 0 {
			return nil, false
		}
		pos := idx + rel
		idx = pos + 1

		if pos > 0 && isIdentByte(content[pos-1]) {
			continue
		}
		i := skipBlanks(content, pos+len(param))
		if i >= len(content) || content[i] != '=' {
			continue
		}
		i = skipBlanks(content, i+1)
		if i >= len(content) || content[i] != '{' {
			continue
		}
		return scanDictEntries(content[i+1:]), true
	}
}

// scanListItems parses a bracketed list body starting just after the
// opening '['. Commas split items at the top nesting level only; quoted
// text accumulates without its delimiters and never splits. A body whose
// closing bracket is missing yields the items committed so far.
func scanListItems(s string) []string {
	items := []string{}
	var current strings.Builder
	depth := 1
	inString := false
	var delim rune

	commit := func() {
		if item := cleanupString(current.String()); item != "" {
			items = append(items, item)
		}
		current.Reset()
	}

	for _, ch := range s {
		switch {
		case ch == '[' && !inString:
			depth++
		case ch == ']' && !inString:
			depth--
			if depth == 0 {
				commit()
				return items
			}
		case ch == ',' && !inString && depth == 1:
			commit()
		case ch == '"' || ch == '\'':
			switch {
			case !inString:
				inString = true
				delim = ch
			case ch == delim:
				inString = false
			default:
				current.WriteRune(ch)
			}
		default:
			current.WriteRune(ch)
		}
	}
	return items
}

// scanDictEntries parses a braced dict body starting just after the
// opening '{'. Both braces and brackets contribute to nesting depth, so
// list values with several items stay on one entry. Values are captured
// verbatim and handed to the list scanner; entries whose value holds no
// list are dropped.
func scanDictEntries(s string) []extrasGroup {
	entries := []extrasGroup{}
	var key, value strings.Builder
	depth := 1
	inString := false
	inKey := true
	var delim rune

	commit := func() {
		group := cleanupString(key.String())
		if group != "" && strings.TrimSpace(value.String()) != "" {
			if deps, ok := extractList(value.String()); ok {
				entries = append(entries, extrasGroup{group: group, deps: deps})
			}
		}
		key.Reset()
		value.Reset()
		inKey = true
	}

	for _, ch := range s {
		switch {
		case (ch == '{' || ch == '[') && !inString:
			depth++
			if !inKey {
				value.WriteRune(ch)
			}
		case (ch == '}' || ch == ']') && !inString:
			depth--
			if depth == 0 {
				commit()
				return entries
			}
			if !inKey {
				value.WriteRune(ch)
			}
		case ch == ':' && !inString && inKey && depth == 1:
			inKey = false
		case ch == ',' && !inString && depth == 1:
			commit()
		case ch == '"' || ch == '\'':
			switch {
			case !inString:
				inString = true
				delim = ch
			case ch == delim:
				inString = false
			default:
				writeTo(&key, &value, inKey, ch)
				continue
			}
			// Values keep their quotes so the list scanner sees them.
			if !inKey {
				value.WriteRune(ch)
			}
		default:
			writeTo(&key, &value, inKey, ch)
		}
	}
	return entries
}

func writeTo(key, value *strings.Builder, inKey bool, ch rune) {
	if inKey {
		key.WriteRune(ch)
	} else {
		value.WriteRune(ch)
	}
}

// extractList parses a bracketed list embedded in a dict value.
func extractList(value string) ([]string, bool) {
	start := strings.IndexByte(value, '[')
	if start < 0 {
		return nil, false
	}
	return scanListItems(value[start+1:]), true
}

// cleanupString trims an item and strips one pair of symmetric quotes.
func cleanupString(s string) string {
	result := strings.TrimSpace(s)
	if len(result) >= 2 {
		first, last := result[0], result[len(result)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			result = result[1 : len(result)-1]
		}
	}
	return result
}
