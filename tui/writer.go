package tui

import (
	"fmt"
	"io"
)

// renderWriter emits table output line by line, latching the first write
// error so render methods can chain lines without per-line error checks.
type renderWriter struct {
	w    io.Writer
	werr error
}

func newRenderWriter(w io.Writer) *renderWriter {
	return &renderWriter{w: w}
}

// linef writes one formatted line. After a failed write every later call
// is a no-op; the latched error surfaces from finish.
func (rw *renderWriter) linef(format string, args ...any) {
	if rw.werr != nil {
		return
	}
	_, rw.werr = fmt.Fprintf(rw.w, format+"\n", args...)
}

// line writes s followed by a newline.
func (rw *renderWriter) line(s string) {
	rw.linef("%s", s)
}

// blank writes an empty separator line.
func (rw *renderWriter) blank() {
	rw.linef("")
}

// finish reports the first write error, if any.
func (rw *renderWriter) finish() error {
	return rw.werr
}
