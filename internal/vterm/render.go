package vterm

import (
	"strconv"
	"strings"
)

// StyleToANSI converts a Style to ANSI escape codes.
// Always starts from a reset so the result is self-contained.
func StyleToANSI(s Style) string {
	var b strings.Builder
	b.Grow(32)

	b.WriteString("\x1b[0")

	if s.Bold {
		b.WriteString(";1")
	}
	if s.Dim {
		b.WriteString(";2")
	}
	if s.Italic {
		b.WriteString(";3")
	}
	if s.Underline {
		b.WriteString(";4")
	}
	if s.Blink {
		b.WriteString(";5")
	}
	if s.Reverse {
		b.WriteString(";7")
	}
	if s.Hidden {
		b.WriteString(";8")
	}
	if s.Strike {
		b.WriteString(";9")
	}

	writeColorToBuilder(&b, s.Fg, true)
	writeColorToBuilder(&b, s.Bg, false)

	b.WriteByte('m')
	return b.String()
}

func writeColorToBuilder(b *strings.Builder, c Color, fg bool) {
	switch c.Type {
	case ColorIndexed:
		idx := c.Value & 0xff
		switch {
		case idx < 8:
			if fg {
				b.WriteString(";3")
			} else {
				b.WriteString(";4")
			}
			b.WriteString(strconv.FormatUint(uint64(idx), 10))
		case idx < 16:
			if fg {
				b.WriteString(";9")
			} else {
				b.WriteString(";10")
			}
			b.WriteString(strconv.FormatUint(uint64(idx-8), 10))
		default:
			if fg {
				b.WriteString(";38;5;")
			} else {
				b.WriteString(";48;5;")
			}
			b.WriteString(strconv.FormatUint(uint64(idx), 10))
		}
	case ColorRGB:
		if fg {
			b.WriteString(";38;2;")
		} else {
			b.WriteString(";48;2;")
		}
		b.WriteString(strconv.FormatUint(uint64(c.Value>>16&0xff), 10))
		b.WriteByte(';')
		b.WriteString(strconv.FormatUint(uint64(c.Value>>8&0xff), 10))
		b.WriteByte(';')
		b.WriteString(strconv.FormatUint(uint64(c.Value&0xff), 10))
	}
}

// Render returns the visible terminal content as a string with ANSI codes
func (v *VTerm) Render() string {
	return RenderScreen(v.VisibleScreen())
}

// RenderScreen renders rows of cells into an ANSI string, one line per row.
func RenderScreen(screen [][]Cell) string {
	var buf strings.Builder
	if len(screen) > 0 {
		buf.Grow(len(screen) * len(screen[0]) * 2)
	}

	var lastStyle Style
	firstCell := true

	for y, row := range screen {
		for _, cell := range row {
			if firstCell || cell.Style != lastStyle {
				buf.WriteString(StyleToANSI(cell.Style))
				lastStyle = cell.Style
				firstCell = false
			}

			// Skip continuation cells (part of wide character)
			if cell.Width == 0 {
				continue
			}

			if cell.Rune == 0 {
				buf.WriteRune(' ')
			} else {
				buf.WriteRune(cell.Rune)
			}
		}

		if y < len(screen)-1 {
			buf.WriteString("\n")
		}
	}

	buf.WriteString("\x1b[0m")
	return buf.String()
}

// VisibleText returns the visible content as plain text with trailing
// blanks trimmed from each line.
func (v *VTerm) VisibleText() string {
	screen := v.VisibleScreen()
	lines := make([]string, len(screen))
	for i, row := range screen {
		var b strings.Builder
		for _, cell := range row {
			if cell.Width == 0 {
				continue
			}
			if cell.Rune == 0 {
				b.WriteRune(' ')
			} else {
				b.WriteRune(cell.Rune)
			}
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}
