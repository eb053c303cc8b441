package clipboard

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriterAppendsNewline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Write("<project>\n</project>"))
	assert.Equal(t, "<project>\n</project>\n", buf.String())
}

func TestWriterError(t *testing.T) {
	t.Parallel()

	w := NewWriter(failingWriter{})

	err := w.Write("x")
	require.Error(t, err)
	assert.ErrorContains(t, err, "broken pipe")
}

func TestSuccessMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Files successfully copied to clipboard!", NewSystem().SuccessMessage())
	assert.Equal(t, "Files successfully written to stdout.", NewWriter(&bytes.Buffer{}).SuccessMessage())
}
