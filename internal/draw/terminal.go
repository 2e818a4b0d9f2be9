// Package draw provides the ANSI terminal plumbing: cursor and screen
// control sequences, terminal size discovery, and buffered frame output.
package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves the cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[2J\033[H")
}

// CursorHome moves the cursor to the top-left without clearing, so a full
// redraw overwrites the previous frame in place.
func CursorHome(w io.Writer) {
	fmt.Fprint(w, "\033[H")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// maxChunkSize is the maximum bytes to write at once. 1400 stays under a
// typical MTU so frames flow smoothly over SSH.
const maxChunkSize = 1400

// FrameWriter accumulates one frame of terminal output and writes it to
// the underlying writer in MTU-sized chunks on Flush. Implements io.Writer
// so fmt.Fprintf can target it directly.
type FrameWriter struct {
	buf  []byte
	bufw *bufio.Writer
}

// NewFrameWriter creates a FrameWriter that writes to w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{
		buf:  make([]byte, 0, 8192),
		bufw: bufio.NewWriterSize(w, 8192),
	}
}

// Write appends p to the pending frame.
func (fw *FrameWriter) Write(p []byte) (int, error) {
	fw.buf = append(fw.buf, p...)
	return len(p), nil
}

// WriteString appends s to the pending frame.
func (fw *FrameWriter) WriteString(s string) {
	fw.buf = append(fw.buf, s...)
}

var _ io.Writer = (*FrameWriter)(nil)

// Flush writes the accumulated frame in chunks and resets the buffer. The
// backing array is retained so steady-state frames do not allocate.
func (fw *FrameWriter) Flush() error {
	data := fw.buf
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := fw.bufw.Write(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	fw.buf = fw.buf[:0]
	return fw.bufw.Flush()
}
