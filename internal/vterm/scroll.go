package vterm

// scrollUp scrolls the region up by n lines. Rows leaving the top of a
// full-screen region on the main screen are captured to scrollback;
// with a narrowed region (or on the alt screen) they are dropped.
func (v *VTerm) scrollUp(n int) {
	if n <= 0 {
		return
	}
	v.snapLive()

	regionHeight := v.ScrollBottom - v.ScrollTop
	if n > regionHeight {
		n = regionHeight
	}

	if !v.AltScreen && v.fullScreenRegion() {
		// Move displaced row slices wholesale; the shift below replaces
		// their screen slots
		for i := 0; i < n; i++ {
			v.Scrollback = append(v.Scrollback, v.Screen[v.ScrollTop+i])
		}
		v.trimScrollback()
	}

	// Shift screen content up within scroll region
	copy(v.Screen[v.ScrollTop:v.ScrollBottom-n], v.Screen[v.ScrollTop+n:v.ScrollBottom])

	// Fill bottom with blank lines
	for i := v.ScrollBottom - n; i < v.ScrollBottom; i++ {
		v.Screen[i] = MakeBlankLine(v.Width)
	}
}

// scrollDown scrolls the region down by n lines (reverse scroll)
func (v *VTerm) scrollDown(n int) {
	if n <= 0 {
		return
	}
	v.snapLive()

	regionHeight := v.ScrollBottom - v.ScrollTop
	if n > regionHeight {
		n = regionHeight
	}

	// Shift screen content down within scroll region
	for i := v.ScrollBottom - 1; i >= v.ScrollTop+n; i-- {
		v.Screen[i] = v.Screen[i-n]
	}

	// Fill top with blank lines
	for i := v.ScrollTop; i < v.ScrollTop+n; i++ {
		v.Screen[i] = MakeBlankLine(v.Width)
	}
}

// insertLines inserts n blank lines at cursor, pushing content down.
// Equivalent to a scroll-down of the sub-region [cursor, bottom).
func (v *VTerm) insertLines(n int) {
	if v.CursorY < v.ScrollTop || v.CursorY >= v.ScrollBottom || n <= 0 {
		return
	}
	v.snapLive()

	maxN := v.ScrollBottom - v.CursorY
	if n > maxN {
		n = maxN
	}

	for i := v.ScrollBottom - 1; i >= v.CursorY+n; i-- {
		v.Screen[i] = v.Screen[i-n]
	}
	for i := v.CursorY; i < v.CursorY+n; i++ {
		v.Screen[i] = MakeBlankLine(v.Width)
	}
}

// deleteLines deletes n lines at cursor, pulling content up
func (v *VTerm) deleteLines(n int) {
	if v.CursorY < v.ScrollTop || v.CursorY >= v.ScrollBottom || n <= 0 {
		return
	}
	v.snapLive()

	maxN := v.ScrollBottom - v.CursorY
	if n > maxN {
		n = maxN
	}

	copy(v.Screen[v.CursorY:v.ScrollBottom-n], v.Screen[v.CursorY+n:v.ScrollBottom])
	for i := v.ScrollBottom - n; i < v.ScrollBottom; i++ {
		v.Screen[i] = MakeBlankLine(v.Width)
	}
}
