package bundle

import (
	"fmt"
	"sort"
	"strings"
)

// RenderTree formats the collected relative paths as an indented pseudo
// tree. Paths are sorted lexicographically; each directory segment opens
// with a `└── name/` header when first entered and files are listed as
// `├── name` leaves, indented two spaces per depth. Comparison is plain
// string order, so paths differing only in case render separately.
func RenderTree(paths []string) string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	var tree strings.Builder
	var openDirs []string

	for _, path := range sorted {
		parts := strings.Split(path, "/")

		for i := 0; i < len(parts)-1; i++ {
			dirPath := strings.Join(parts[:i+1], "/")

			if i >= len(openDirs) {
				fmt.Fprintf(&tree, "%s└── %s/\n", strings.Repeat(" ", i*2), parts[i])
				openDirs = append(openDirs, dirPath)
			} else if openDirs[i] != dirPath {
				fmt.Fprintf(&tree, "%s└── %s/\n", strings.Repeat(" ", i*2), parts[i])
				openDirs[i] = dirPath
				openDirs = openDirs[:i+1]
			}
		}

		fileName := parts[len(parts)-1]
		fmt.Fprintf(&tree, "%s├── %s\n", strings.Repeat(" ", (len(parts)-1)*2), fileName)
	}

	return tree.String()
}
