package draw

import (
	"strings"
	"unicode/utf8"
)

// WriteCentered writes s centred on column centerCol.
func WriteCentered(cw *ChunkWriter, centerCol, row int, s string) {
	cw.WriteAt(max(centerCol-utf8.RuneCountInString(s)/2, 1), row, s)
}

// Wrap breaks s into lines of at most width runes, splitting on spaces.
// Words longer than width are cut.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	n := 0
	for _, word := range strings.Fields(s) {
		for utf8.RuneCountInString(word) > width {
			if n > 0 {
				lines = append(lines, line.String())
				line.Reset()
				n = 0
			}
			r := []rune(word)
			lines = append(lines, string(r[:width]))
			word = string(r[width:])
		}
		wn := utf8.RuneCountInString(word)
		if wn == 0 {
			continue
		}
		if n > 0 && n+1+wn > width {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wn
	}
	if n > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Pad right-pads s with spaces to width runes so shorter text overwrites
// what was there before.
func Pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Bar renders a fixed-width gauge such as "[####----]".
func Bar(ratio float64, width int) string {
	ratio = min(max(ratio, 0), 1)
	filled := int(ratio*float64(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
