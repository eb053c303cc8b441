package bundle

import (
	"fmt"
	"strings"

	"codeclip/pkg/manifest"
)

// FormatDocument assembles the output document: project metadata, the
// rendered file tree, then every file verbatim in collected order. File
// contents are not escaped.
func FormatDocument(entries []FileEntry, kind manifest.Kind, info string) string {
	var output strings.Builder

	output.WriteString("<project>\n")

	switch kind {
	case manifest.Rust:
		output.WriteString("<cargo_info>\n")
		output.WriteString(info)
		output.WriteString("</cargo_info>\n\n")
	case manifest.Python:
		output.WriteString("<python_info>\n")
		output.WriteString(info)
		output.WriteString("</python_info>\n\n")
	default:
		output.WriteString("<project_info>\n")
		output.WriteString("Project type could not be determined.\n")
		output.WriteString("</project_info>\n\n")
	}

	output.WriteString("<file_structure>\n")

	paths := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = entry.Path
	}
	output.WriteString(RenderTree(paths))

	output.WriteString("</file_structure>\n\n")

	for _, entry := range entries {
		fmt.Fprintf(&output, "<file path=\"%s\">\n", entry.Path)
		output.WriteString(entry.Content)
		output.WriteString("\n</file>\n\n")
	}

	output.WriteString("</project>")

	return output.String()
}
