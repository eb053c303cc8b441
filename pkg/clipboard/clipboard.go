// Package clipboard provides the output sinks an assembled document can
// be written to.
package clipboard

import (
	"fmt"
	"io"

	atotto "github.com/atotto/clipboard"
)

// System writes documents to the system clipboard.
type System struct{}

// NewSystem returns the system clipboard sink.
func NewSystem() *System {
	return &System{}
}

func (*System) Write(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard error: %w", err)
	}
	return nil
}

func (*System) SuccessMessage() string {
	return "Files successfully copied to clipboard!"
}

// Writer writes documents to an io.Writer, typically stdout. A trailing
// newline is added after the document.
type Writer struct {
	Out io.Writer
}

// NewWriter returns a sink writing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{Out: out}
}

func (w *Writer) Write(text string) error {
	if _, err := fmt.Fprintln(w.Out, text); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func (w *Writer) SuccessMessage() string {
	return "Files successfully written to stdout."
}
