package vterm

import "github.com/mattn/go-runewidth"

// putChar places a character at current cursor position
func (v *VTerm) putChar(r rune) {
	v.snapLive()
	width := runewidth.RuneWidth(r)
	if width == 0 {
		// Zero-width marks and combining characters do not occupy a cell
		return
	}

	if v.wrapNext {
		v.wrapNext = false
		if v.AutoWrap {
			v.CursorX = 0
			v.lineFeed()
		}
	}

	// A wide glyph that would straddle the right edge pads the last
	// column and starts on the next line
	if width == 2 && v.CursorX == v.Width-1 {
		if v.CursorY >= 0 && v.CursorY < len(v.Screen) {
			v.Screen[v.CursorY][v.CursorX] = Cell{Rune: ' ', Style: v.CurrentStyle, Width: 1}
		}
		if !v.AutoWrap {
			return
		}
		v.CursorX = 0
		v.lineFeed()
	}

	if v.CursorY < 0 || v.CursorY >= len(v.Screen) {
		return
	}
	line := v.Screen[v.CursorY]
	if v.CursorX < 0 || v.CursorX >= len(line) {
		return
	}

	// Overwriting half of an existing wide glyph clears the other half
	cur := line[v.CursorX]
	if cur.Width == 0 && v.CursorX > 0 {
		line[v.CursorX-1] = DefaultCell()
	}
	if cur.Width == 2 && v.CursorX+1 < v.Width {
		line[v.CursorX+1] = DefaultCell()
	}

	line[v.CursorX] = Cell{Rune: r, Style: v.CurrentStyle, Width: width}

	if width == 2 && v.CursorX+1 < v.Width {
		next := line[v.CursorX+1]
		if next.Width == 2 && v.CursorX+2 < v.Width {
			line[v.CursorX+2] = DefaultCell()
		}
		line[v.CursorX+1] = Cell{Style: v.CurrentStyle} // continuation cell
	}

	if v.CursorX+width >= v.Width {
		// The cursor conceptually rests past the last column; the next
		// printable wraps first (if auto-wrap is on)
		v.CursorX = v.Width - 1
		v.wrapNext = v.AutoWrap
	} else {
		v.CursorX += width
	}
}

// lineFeed moves cursor down, scrolling if at the bottom of the region
func (v *VTerm) lineFeed() {
	v.snapLive()
	if v.CursorY == v.ScrollBottom-1 {
		v.scrollUp(1)
	} else if v.CursorY < v.Height-1 {
		v.CursorY++
	}
}

// reverseIndex moves cursor up, scrolling down if at the top of the region
func (v *VTerm) reverseIndex() {
	if v.CursorY == v.ScrollTop {
		v.scrollDown(1)
	} else if v.CursorY > 0 {
		v.CursorY--
	}
}

// carriageReturn moves cursor to beginning of line
func (v *VTerm) carriageReturn() {
	v.wrapNext = false
	v.CursorX = 0
}

// tab moves cursor to next tab stop (every 8 columns)
func (v *VTerm) tab() {
	v.wrapNext = false
	v.CursorX = ((v.CursorX / 8) + 1) * 8
	if v.CursorX >= v.Width {
		v.CursorX = v.Width - 1
	}
}

// backspace moves cursor back one
func (v *VTerm) backspace() {
	v.wrapNext = false
	if v.CursorX > 0 {
		v.CursorX--
	}
}

// eraseDisplay clears parts of the display
func (v *VTerm) eraseDisplay(mode int) {
	v.snapLive()
	switch mode {
	case 0: // Cursor to end
		if v.CursorY < len(v.Screen) {
			for x := v.CursorX; x < v.Width; x++ {
				v.Screen[v.CursorY][x] = DefaultCell()
			}
		}
		for y := v.CursorY + 1; y < v.Height; y++ {
			v.Screen[y] = MakeBlankLine(v.Width)
		}
	case 1: // Start to cursor
		for y := 0; y < v.CursorY; y++ {
			v.Screen[y] = MakeBlankLine(v.Width)
		}
		if v.CursorY < len(v.Screen) {
			for x := 0; x <= v.CursorX && x < v.Width; x++ {
				v.Screen[v.CursorY][x] = DefaultCell()
			}
		}
	case 2, 3: // Entire display (3 also clears scrollback)
		for y := 0; y < v.Height; y++ {
			v.Screen[y] = MakeBlankLine(v.Width)
		}
		if mode == 3 {
			v.Scrollback = v.Scrollback[:0]
		}
	}
}

// eraseLine clears parts of the current line
func (v *VTerm) eraseLine(mode int) {
	if v.CursorY >= len(v.Screen) {
		return
	}
	v.snapLive()

	switch mode {
	case 0: // Cursor to end
		for x := v.CursorX; x < v.Width; x++ {
			v.Screen[v.CursorY][x] = DefaultCell()
		}
	case 1: // Start to cursor
		for x := 0; x <= v.CursorX && x < v.Width; x++ {
			v.Screen[v.CursorY][x] = DefaultCell()
		}
	case 2: // Entire line
		v.Screen[v.CursorY] = MakeBlankLine(v.Width)
	}
	normalizeLine(v.Screen[v.CursorY])
}

// insertChars inserts n blank chars at cursor, shifting content right
func (v *VTerm) insertChars(n int) {
	if v.CursorY >= len(v.Screen) || n <= 0 {
		return
	}
	v.snapLive()
	line := v.Screen[v.CursorY]
	if n > v.Width-v.CursorX {
		n = v.Width - v.CursorX
	}

	copy(line[v.CursorX+n:], line[v.CursorX:v.Width-n])
	for i := v.CursorX; i < v.CursorX+n; i++ {
		line[i] = DefaultCell()
	}
	normalizeLine(line)
}

// deleteChars deletes n chars at cursor, shifting content left
func (v *VTerm) deleteChars(n int) {
	if v.CursorY >= len(v.Screen) || n <= 0 {
		return
	}
	v.snapLive()
	line := v.Screen[v.CursorY]
	if n > v.Width-v.CursorX {
		n = v.Width - v.CursorX
	}

	copy(line[v.CursorX:], line[v.CursorX+n:])
	for i := v.Width - n; i < v.Width; i++ {
		line[i] = DefaultCell()
	}
	normalizeLine(line)
}

// eraseChars erases n chars at cursor (doesn't shift)
func (v *VTerm) eraseChars(n int) {
	if v.CursorY >= len(v.Screen) || n <= 0 {
		return
	}
	v.snapLive()
	line := v.Screen[v.CursorY]

	for i := v.CursorX; i < v.CursorX+n && i < v.Width; i++ {
		line[i] = DefaultCell()
	}
	normalizeLine(line)
}
