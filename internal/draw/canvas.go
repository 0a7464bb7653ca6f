package draw

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tomz197/skyquiz/internal/physics"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a canvas pixel colour. ColorNone is an empty pixel.
type Color uint8

const (
	ColorNone Color = iota
	White
	Gray
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	BrightRed
	BrightYellow
	BrightCyan
)

var fgCodes = [...]int{
	White:        97,
	Gray:         90,
	Red:          31,
	Green:        32,
	Yellow:       33,
	Blue:         34,
	Magenta:      35,
	Cyan:         36,
	BrightRed:    91,
	BrightYellow: 93,
	BrightCyan:   96,
}

// cell is one rendered terminal character.
type cell struct {
	ch     rune
	fg, bg Color
}

// dirty never matches a real cell, forcing a rewrite.
var dirty = cell{ch: -1}

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. It scales from logical coordinates to terminal pixels
// and only rewrites cells that changed since the last Render.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int     // termHeight * 2
	pixels         []Color // [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// 0-based terminal offset when the render area is centred in a larger terminal.
	offsetCol int
	offsetRow int

	prev      []cell // what the terminal currently shows
	renderBuf strings.Builder
}

// NewScaledCanvas creates a canvas mapping a logicalWidth×logicalHeight area
// onto termWidth×termHeight terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth, termHeight = max(termWidth, 1), max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.prev = make([]cell, termWidth*termHeight)
		c.ForceRedraw()
	}
	c.rescale()
}

// SetLogicalSize changes the coordinate space drawn into.
func (c *Canvas) SetLogicalSize(width, height float64) {
	if width <= 0 || height <= 0 || (width == c.logicalWidth && height == c.logicalHeight) {
		return
	}
	c.logicalWidth, c.logicalHeight = width, height
	c.rescale()
}

func (c *Canvas) rescale() {
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

func (c *Canvas) OffsetCol() int { return c.offsetCol }
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Clear resets all pixels. The terminal is untouched until the next Render.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render rewrite every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = dirty
	}
}

// MarkTextDirty marks n cells starting at the 1-based (col, row) as
// overwritten by text, so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	row--
	if row < 0 || row >= c.termHeight {
		return
	}
	for x := max(col-1, 0); x < min(col-1+n, c.termWidth); x++ {
		c.prev[row*c.termWidth+x] = dirty
	}
}

func (c *Canvas) setPixel(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// SetFloat sets one pixel at logical coordinates.
func (c *Canvas) SetFloat(x, y float64, color Color) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)), color)
}

// FillRect fills a logical box. Anything non-empty covers at least one pixel.
func (c *Canvas) FillRect(r physics.Rect, color Color) {
	x0 := int(math.Floor(r.X * c.scaleX))
	y0 := int(math.Floor(r.Y * c.scaleY))
	x1 := max(int(math.Ceil((r.X+r.W)*c.scaleX)), x0+1)
	y1 := max(int(math.Ceil((r.Y+r.H)*c.scaleY)), y0+1)

	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)
	for y := y0; y < y1; y++ {
		row := c.pixels[y*c.termWidth : (y+1)*c.termWidth]
		for x := x0; x < x1; x++ {
			row[x] = color
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 physics.Point, color Color) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1, color)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cellAt combines the two sub-pixels of one terminal cell.
func (c *Canvas) cellAt(col, row int) cell {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]

	switch {
	case top == ColorNone && bottom == ColorNone:
		return cell{ch: ' '}
	case top == bottom:
		return cell{ch: BlockFull, fg: top}
	case bottom == ColorNone:
		return cell{ch: BlockUpperHalf, fg: top}
	case top == ColorNone:
		return cell{ch: BlockLowerHalf, fg: bottom}
	default:
		return cell{ch: BlockUpperHalf, fg: top, bg: bottom}
	}
}

// Render writes every cell that changed since the previous Render.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	var cur cell // colours currently active on the terminal
	for row := range c.termHeight {
		for col := range c.termWidth {
			i := row*c.termWidth + col
			next := c.cellAt(col, row)
			if next == c.prev[i] {
				continue
			}
			c.prev[i] = next

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			if next.fg != cur.fg || next.bg != cur.bg {
				c.renderBuf.WriteString(ColorReset)
				if next.fg != ColorNone {
					fmt.Fprintf(&c.renderBuf, "\033[%dm", fgCodes[next.fg])
				}
				if next.bg != ColorNone {
					fmt.Fprintf(&c.renderBuf, "\033[%dm", fgCodes[next.bg]+10)
				}
				cur.fg, cur.bg = next.fg, next.bg
			}
			c.renderBuf.WriteRune(next.ch)
		}
	}
	if cur.fg != ColorNone || cur.bg != ColorNone {
		c.renderBuf.WriteString(ColorReset)
	}

	io.WriteString(w, c.renderBuf.String())
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // room for left/right bars
	hasV := c.offsetRow >= 1 // room for top/bottom bars

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.termWidth)
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}
