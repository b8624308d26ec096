package vterm

// MaxScrollback is the default scrollback capacity in lines.
const MaxScrollback = 10000

// ResponseWriter is called when the terminal needs to send a response back to the PTY
type ResponseWriter func([]byte)

// CursorShape selects how the renderer draws the cursor (DECSCUSR).
type CursorShape uint8

const (
	CursorBlock CursorShape = iota
	CursorUnderline
	CursorBar
)

// VTerm is a virtual terminal emulator with scrollback support
type VTerm struct {
	// Screen buffer (visible area)
	Screen [][]Cell

	// Scrollback buffer (oldest at index 0)
	Scrollback [][]Cell

	// Cursor position (0-indexed)
	CursorX, CursorY int

	// Dimensions
	Width, Height int

	// Scroll viewing position (0 = live, >0 = lines scrolled up)
	ViewOffset int

	// Alt screen mode (vim, etc.)
	AltScreen bool
	mainBuf   [][]Cell // main screen while the alt screen is active
	mainCursorX, mainCursorY int
	altRestoreCursor         bool // mode 1049 restores the saved cursor on exit

	// Scrolling region (for DECSTBM); Bottom is exclusive
	ScrollTop    int
	ScrollBottom int

	// Current style for new characters
	CurrentStyle Style

	// Saved cursor state (for DECSC/DECRC)
	SavedCursorX int
	SavedCursorY int
	SavedStyle   Style

	// Pending wrap: the cursor conceptually rests past the last column
	// and wraps before the next printable.
	wrapNext bool

	// Window title from OSC 0/2
	Title string

	// Mode flags
	OriginMode      bool
	AutoWrap        bool
	CursorHidden    bool
	CursorBlink     bool
	Shape           CursorShape
	AppCursorKeys   bool
	BracketedPaste  bool
	MouseTracking   bool // mode 1000: button press/release
	MouseCellMotion bool // mode 1002: press/release + drag
	MouseSGR        bool // mode 1006: SGR encoding
	FocusEvents     bool // mode 1004

	// Synchronized output (DEC 2026)
	syncActive        bool
	syncScreen        [][]Cell
	syncScrollbackLen int

	maxScrollback int

	// Parser state
	parser *Parser

	// Response writer for terminal queries (DSR, DA, etc.)
	responseWriter ResponseWriter
}

// New creates a new VTerm with the given dimensions
func New(width, height int) *VTerm {
	v := &VTerm{
		Width:         width,
		Height:        height,
		ScrollTop:     0,
		ScrollBottom:  height,
		AutoWrap:      true,
		maxScrollback: MaxScrollback,
	}
	v.Screen = v.makeScreen(width, height)
	v.Scrollback = make([][]Cell, 0, 64)
	v.parser = NewParser(v)
	return v
}

// makeScreen creates a blank screen buffer
func (v *VTerm) makeScreen(width, height int) [][]Cell {
	screen := make([][]Cell, height)
	for i := range screen {
		screen[i] = MakeBlankLine(width)
	}
	return screen
}

// Write processes input bytes from PTY
func (v *VTerm) Write(data []byte) {
	v.parser.Parse(data)
}

// SetResponseWriter sets the callback for terminal query responses
func (v *VTerm) SetResponseWriter(w ResponseWriter) {
	v.responseWriter = w
}

// respond sends a response back to the PTY (for terminal queries)
func (v *VTerm) respond(data []byte) {
	if v.responseWriter != nil {
		v.responseWriter(data)
	}
}

// SetMaxScrollback changes the scrollback capacity, evicting oldest lines
// if the new capacity is smaller.
func (v *VTerm) SetMaxScrollback(n int) {
	if n < 0 {
		n = 0
	}
	v.maxScrollback = n
	v.trimScrollback()
	v.clampViewOffset()
}

// MaxScrollbackLines returns the current scrollback capacity.
func (v *VTerm) MaxScrollbackLines() int {
	return v.maxScrollback
}

// trimScrollback keeps scrollback under the configured capacity
func (v *VTerm) trimScrollback() {
	if len(v.Scrollback) > v.maxScrollback {
		v.Scrollback = v.Scrollback[len(v.Scrollback)-v.maxScrollback:]
	}
}

// snapLive returns the view to the live screen. Every grid mutation calls
// this so new output is always visible.
func (v *VTerm) snapLive() {
	v.ViewOffset = 0
}

func (v *VTerm) clampViewOffset() {
	if v.ViewOffset > len(v.Scrollback) {
		v.ViewOffset = len(v.Scrollback)
	}
	if v.ViewOffset < 0 {
		v.ViewOffset = 0
	}
}

// fullScreenRegion reports whether the scrolling region spans the whole screen.
func (v *VTerm) fullScreenRegion() bool {
	return v.ScrollTop == 0 && v.ScrollBottom == v.Height
}

// ScrollView scrolls the view by delta lines (positive = up into history)
func (v *VTerm) ScrollView(delta int) {
	v.ViewOffset += delta
	v.clampViewOffset()
}

// ScrollViewTo sets absolute scroll position
func (v *VTerm) ScrollViewTo(offset int) {
	v.ViewOffset = offset
	v.clampViewOffset()
}

// ScrollViewToTop scrolls to oldest content
func (v *VTerm) ScrollViewToTop() {
	v.ViewOffset = len(v.Scrollback)
}

// ScrollViewToBottom returns to live view
func (v *VTerm) ScrollViewToBottom() {
	v.ViewOffset = 0
}

// IsScrolled returns true if viewing scrollback
func (v *VTerm) IsScrolled() bool {
	return v.ViewOffset > 0
}

// GetScrollInfo returns (current offset, max offset)
func (v *VTerm) GetScrollInfo() (int, int) {
	return v.ViewOffset, len(v.Scrollback)
}
