package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// defaultTableWidth sizes horizontal rules when the output is not a
// terminal or its size cannot be read.
const defaultTableWidth = 80

// terminalWidth measures the terminal behind w. Pipes, files, and test
// buffers get defaultTableWidth.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultTableWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTableWidth
	}
	return width
}
