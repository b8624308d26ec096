package vterm

// Snapshot captures everything a renderer needs for one frame. Rows are
// deep copies, so a snapshot stays consistent while the terminal keeps
// processing output.
type Snapshot struct {
	Width  int
	Height int

	// Visible rows: scrollback tail above the screen top when scrolled back
	Screen [][]Cell

	CursorX      int
	CursorY      int
	CursorHidden bool
	CursorBlink  bool
	Shape        CursorShape

	ViewOffset    int
	ScrollbackLen int
	AltScreen     bool
	Title         string

	// Input-affecting modes for the host application
	AppCursorKeys   bool
	BracketedPaste  bool
	MouseTracking   bool
	MouseCellMotion bool
	MouseSGR        bool
	FocusEvents     bool
}

// VisibleScreen returns deep copies of the rows currently in view. When
// scrolled back, the top rows come from the scrollback tail and the rest
// from the top of the active screen.
func (v *VTerm) VisibleScreen() [][]Cell {
	screen, scrollbackLen := v.renderBuffers()

	offset := v.ViewOffset
	if offset > scrollbackLen {
		offset = scrollbackLen
	}

	rows := make([][]Cell, 0, v.Height)
	if offset > 0 {
		start := scrollbackLen - offset
		for i := start; i < scrollbackLen && len(rows) < v.Height; i++ {
			rows = append(rows, CopyLine(v.Scrollback[i]))
		}
	}
	for i := 0; i < len(screen) && len(rows) < v.Height; i++ {
		rows = append(rows, CopyLine(screen[i]))
	}
	for len(rows) < v.Height {
		rows = append(rows, MakeBlankLine(v.Width))
	}
	return rows
}

// Snapshot builds a read-only copy of the current render state.
func (v *VTerm) Snapshot() *Snapshot {
	return &Snapshot{
		Width:           v.Width,
		Height:          v.Height,
		Screen:          v.VisibleScreen(),
		CursorX:         v.CursorX,
		CursorY:         v.CursorY,
		CursorHidden:    v.CursorHidden,
		CursorBlink:     v.CursorBlink,
		Shape:           v.Shape,
		ViewOffset:      v.ViewOffset,
		ScrollbackLen:   len(v.Scrollback),
		AltScreen:       v.AltScreen,
		Title:           v.Title,
		AppCursorKeys:   v.AppCursorKeys,
		BracketedPaste:  v.BracketedPaste,
		MouseTracking:   v.MouseTracking,
		MouseCellMotion: v.MouseCellMotion,
		MouseSGR:        v.MouseSGR,
		FocusEvents:     v.FocusEvents,
	}
}
