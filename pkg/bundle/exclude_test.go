package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExcludedDir(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		excluded bool
	}{
		{".git", true},
		{"target", true},
		{"node_modules", true},
		{"__pycache__", true},
		{"venv", true},
		{"env", true},
		{"mypkg.egg-info", true},
		{".egg-info", true},
		{"src", false},
		{"retarget", false},
		{"layout", false},
		{"environment", false},
		{"builds", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.excluded, isExcludedDir(tc.name))
		})
	}
}

func TestIsExcludedExtension(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		excluded bool
	}{
		{"photo.png", true},
		{"photo.PNG", true},
		{"lib/module.pyc", true},
		{"app.jar", true},
		{"main.go", false},
		{"README", false},
		{"archive.gz", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.excluded, isExcludedExtension(tc.name))
		})
	}
}
