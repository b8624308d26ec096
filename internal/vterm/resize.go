package vterm

// lastUsedRow returns the index of the last row holding content, never
// less than the cursor row.
func lastUsedRow(screen [][]Cell, cursorY int) int {
	for i := len(screen) - 1; i >= 0; i-- {
		if !isBlankLine(screen[i]) {
			if i > cursorY {
				return i
			}
			break
		}
	}
	if cursorY < 0 {
		return 0
	}
	return cursorY
}

// Resize handles terminal resize. On the main screen, shrinking pushes the
// used top rows into scrollback and growing pulls rows back out; the alt
// screen drops and pads instead. Width changes pad or truncate every row.
// The scrolling region resets to the full screen.
func (v *VTerm) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == v.Width && height == v.Height {
		return
	}

	// The main screen and its cursor, wherever they currently live
	main := v.Screen
	mainY := v.CursorY
	if v.AltScreen {
		main = v.mainBuf
		mainY = v.mainCursorY
	}

	if height < v.Height {
		overflow := v.Height - height
		push := lastUsedRow(main, mainY) + 1
		if push > overflow {
			push = overflow
		}
		for i := 0; i < push; i++ {
			v.Scrollback = append(v.Scrollback, main[i])
		}
		main = main[push:]
		if len(main) > height {
			main = main[:height]
		}
		mainY -= push
		v.trimScrollback()
	} else if height > v.Height {
		pull := height - v.Height
		if pull > len(v.Scrollback) {
			pull = len(v.Scrollback)
		}
		if pull > 0 {
			restored := make([][]Cell, 0, pull+len(main))
			restored = append(restored, v.Scrollback[len(v.Scrollback)-pull:]...)
			restored = append(restored, main...)
			v.Scrollback = v.Scrollback[:len(v.Scrollback)-pull]
			main = restored
			mainY += pull
		}
	}

	for len(main) < height {
		main = append(main, MakeBlankLine(width))
	}

	for i := range main {
		main[i] = resizeLine(main[i], width)
	}
	if width != v.Width {
		for i := range v.Scrollback {
			v.Scrollback[i] = resizeLine(v.Scrollback[i], width)
		}
	}

	if v.AltScreen {
		v.mainBuf = main
		if mainY < 0 {
			mainY = 0
		}
		if mainY >= height {
			mainY = height - 1
		}
		v.mainCursorY = mainY
		if v.mainCursorX >= width {
			v.mainCursorX = width - 1
		}

		// Alt screen: surplus top rows are discarded, no scrollback
		alt := v.Screen
		if len(alt) > height {
			dropped := len(alt) - height
			alt = alt[dropped:]
			v.CursorY -= dropped
		}
		for len(alt) < height {
			alt = append(alt, MakeBlankLine(width))
		}
		for i := range alt {
			alt[i] = resizeLine(alt[i], width)
		}
		v.Screen = alt
	} else {
		v.Screen = main
		v.CursorY = mainY
	}

	v.Width = width
	v.Height = height
	v.ScrollTop = 0
	v.ScrollBottom = height
	v.wrapNext = false
	if v.syncActive {
		// A stale sync snapshot cannot survive a geometry change
		v.syncScreen = nil
		v.syncActive = false
	}
	v.clampCursor()
	v.clampViewOffset()
}
