package bundle

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	t.Parallel()

	paths := []string{
		"src/main.rs",
		"Cargo.toml",
		"src/lib/util.rs",
		"docs/guide.md",
	}

	expected := "├── Cargo.toml\n" +
		"└── docs/\n" +
		"  ├── guide.md\n" +
		"└── src/\n" +
		"  └── lib/\n" +
		"    ├── util.rs\n" +
		"  ├── main.rs\n"
	assert.Equal(t, expected, RenderTree(paths))
}

func TestRenderTreeEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RenderTree(nil))
}

func TestRenderTreeOrderInsensitive(t *testing.T) {
	t.Parallel()

	a := RenderTree([]string{"x/a.txt", "b.txt", "x/y/c.txt"})
	b := RenderTree([]string{"x/y/c.txt", "x/a.txt", "b.txt"})
	assert.Equal(t, a, b)
}

func TestRenderTreeCaseSensitive(t *testing.T) {
	t.Parallel()

	expected := "└── Lib/\n" +
		"  ├── a.go\n" +
		"└── lib/\n" +
		"  ├── b.go\n"
	assert.Equal(t, expected, RenderTree([]string{"Lib/a.go", "lib/b.go"}))
}

func TestRenderTreeRoundTrip(t *testing.T) {
	t.Parallel()

	// Walking the rendered tree with a directory stack must yield the
	// original paths, sorted.
	paths := []string{
		"b/x.txt", "a.txt", "b/c/d.txt", "b/c/e.txt", "z/f.txt", "b/y.txt",
	}

	rendered := RenderTree(paths)

	var leaves []string
	var stack []string
	for _, line := range strings.Split(strings.TrimSuffix(rendered, "\n"), "\n") {
		depth := (len(line) - len(strings.TrimLeft(line, " "))) / 2
		entry := strings.TrimLeft(line, " ")

		switch {
		case strings.HasPrefix(entry, "└── "):
			name := strings.TrimSuffix(strings.TrimPrefix(entry, "└── "), "/")
			stack = append(stack[:depth], name)
		case strings.HasPrefix(entry, "├── "):
			name := strings.TrimPrefix(entry, "├── ")
			leaf := strings.Join(append(append([]string{}, stack[:depth]...), name), "/")
			leaves = append(leaves, leaf)
		}
	}

	want := append([]string{}, paths...)
	sort.Strings(want)
	assert.Equal(t, want, leaves)
}
