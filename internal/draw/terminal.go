package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes written at once. Staying under a typical
// MTU keeps SSH output smooth.
const maxChunkSize = 1400

const (
	ColorReset = "\033[0m"
	Bold       = "\033[1m"

	clearSeq      = "\033[H\033[2J"
	hideCursorSeq = "\033[?25l"
	showCursorSeq = "\033[?25h"
)

// Style returns the escape sequence that sets color as the text colour.
func Style(color Color) string {
	if color == ColorNone || int(color) >= len(fgCodes) {
		return ColorReset
	}
	return "\033[" + strconv.Itoa(fgCodes[color]) + "m"
}

// ChunkWriter accumulates text for terminal output and writes it in chunks.
// Use MoveCursor, WriteString and WriteRune to accumulate, then Flush.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte // scratch space for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer for Canvas.Render.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes s at the 1-based canvas position (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// WriteStyled writes s at (col, row) in color, optionally bold, then resets
// the attributes.
func (cw *ChunkWriter) WriteStyled(col, row int, color Color, bold bool, s string) {
	cw.MoveCursor(col, row)
	if bold {
		cw.buf.WriteString(Bold)
	}
	cw.buf.WriteString(Style(color))
	cw.buf.WriteString(s)
	cw.buf.WriteString(ColorReset)
}

// Clear queues a full screen clear. The offset is ignored.
func (cw *ChunkWriter) Clear() {
	cw.buf.WriteString(clearSeq)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	_, _ = io.WriteString(w, clearSeq)
}

func HideCursor(w io.Writer) {
	_, _ = io.WriteString(w, hideCursorSeq)
}

func ShowCursor(w io.Writer) {
	_, _ = io.WriteString(w, showCursorSeq)
}
