package vterm

import (
	"fmt"
	"strings"
	"testing"
)

func feed(vt *VTerm, s string) {
	vt.Write([]byte(s))
}

func rowText(vt *VTerm, y int) string {
	if y < 0 || y >= len(vt.Screen) {
		return ""
	}
	var b strings.Builder
	for _, cell := range vt.Screen[y] {
		if cell.Width == 0 {
			continue
		}
		if cell.Rune == 0 {
			b.WriteRune(' ')
		} else {
			b.WriteRune(cell.Rune)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func checkInvariants(t *testing.T, vt *VTerm) {
	t.Helper()
	if len(vt.Screen) != vt.Height {
		t.Fatalf("screen has %d rows, want %d", len(vt.Screen), vt.Height)
	}
	for y, row := range vt.Screen {
		if len(row) != vt.Width {
			t.Fatalf("row %d has %d cells, want %d", y, len(row), vt.Width)
		}
	}
	if vt.CursorX < 0 || vt.CursorX >= vt.Width || vt.CursorY < 0 || vt.CursorY >= vt.Height {
		t.Fatalf("cursor (%d,%d) out of bounds %dx%d", vt.CursorX, vt.CursorY, vt.Width, vt.Height)
	}
	if len(vt.Scrollback) > vt.maxScrollback {
		t.Fatalf("scrollback %d exceeds capacity %d", len(vt.Scrollback), vt.maxScrollback)
	}
}

func TestPlainText(t *testing.T) {
	vt := New(20, 5)
	feed(vt, "hello")

	if got := rowText(vt, 0); got != "hello" {
		t.Errorf("row 0 = %q, want %q", got, "hello")
	}
	if vt.CursorX != 5 || vt.CursorY != 0 {
		t.Errorf("cursor = (%d,%d), want (5,0)", vt.CursorX, vt.CursorY)
	}
	checkInvariants(t, vt)
}

func TestLineFeedScrollsIntoScrollback(t *testing.T) {
	vt := New(10, 3)
	feed(vt, "one\r\ntwo\r\nthree\r\nfour")

	if got := rowText(vt, 0); got != "two" {
		t.Errorf("top row = %q, want %q", got, "two")
	}
	if len(vt.Scrollback) != 1 {
		t.Fatalf("scrollback len = %d, want 1", len(vt.Scrollback))
	}
	if got := strings.TrimRight(string(lineRunes(vt.Scrollback[0])), " "); got != "one" {
		t.Errorf("scrollback row = %q, want %q", got, "one")
	}
	checkInvariants(t, vt)
}

func lineRunes(line []Cell) []rune {
	out := make([]rune, 0, len(line))
	for _, c := range line {
		if c.Width == 0 {
			continue
		}
		if c.Rune == 0 {
			out = append(out, ' ')
		} else {
			out = append(out, c.Rune)
		}
	}
	return out
}

func TestScrollbackCapacity(t *testing.T) {
	vt := New(10, 3)
	vt.SetMaxScrollback(5)

	for i := 0; i < 30; i++ {
		feed(vt, "x\r\n")
	}

	if len(vt.Scrollback) > 5 {
		t.Errorf("scrollback len = %d, want <= 5", len(vt.Scrollback))
	}
	checkInvariants(t, vt)
}

func TestNarrowRegionSkipsScrollback(t *testing.T) {
	vt := New(10, 10)
	feed(vt, "\x1b[3;5r") // region rows 3-5 (1-based)

	if vt.ScrollTop != 2 || vt.ScrollBottom != 5 {
		t.Fatalf("region = [%d,%d), want [2,5)", vt.ScrollTop, vt.ScrollBottom)
	}
	if vt.CursorX != 0 || vt.CursorY != 0 {
		t.Fatalf("DECSTBM should home the cursor, got (%d,%d)", vt.CursorX, vt.CursorY)
	}

	feed(vt, "\x1b[5;1H")
	for i := 0; i < 10; i++ {
		feed(vt, "\n")
	}
	if len(vt.Scrollback) != 0 {
		t.Errorf("narrowed region pushed %d rows to scrollback", len(vt.Scrollback))
	}
	checkInvariants(t, vt)
}

func TestScrollingRegionLineFeed(t *testing.T) {
	vt := New(10, 10)
	for i := 0; i < 10; i++ {
		feed(vt, fmt.Sprintf("\x1b[%d;1H", i+1))
		vt.putChar(rune('a' + i))
	}
	// Rows now hold a..j in column 0
	feed(vt, "\x1b[3;5r") // ScrollTop=2, ScrollBottom=5
	feed(vt, "\x1b[5;1H") // cursor to row index 4
	feed(vt, "\n")

	want := []string{"a", "b", "d", "e", "", "f", "g", "h", "i", "j"}
	for y, w := range want {
		if got := rowText(vt, y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
	if vt.CursorY != 4 {
		t.Errorf("cursor row = %d, want 4", vt.CursorY)
	}
	checkInvariants(t, vt)
}

func TestCursorUpDownRespectRegion(t *testing.T) {
	vt := New(10, 10)
	feed(vt, "\x1b[3;6r")
	feed(vt, "\x1b[4;1H") // inside the region
	feed(vt, "\x1b[99A")  // CUU must stop at the region top
	if vt.CursorY != 2 {
		t.Errorf("cursor row after CUU = %d, want 2", vt.CursorY)
	}
	feed(vt, "\x1b[99B") // CUD must stop at the region bottom
	if vt.CursorY != 5 {
		t.Errorf("cursor row after CUD = %d, want 5", vt.CursorY)
	}
	checkInvariants(t, vt)
}

func TestInsertDeleteLines(t *testing.T) {
	vt := New(10, 5)
	feed(vt, "a\r\nb\r\nc\r\nd\r\ne")

	feed(vt, "\x1b[2;1H\x1b[2L") // insert 2 blank lines at row 2
	want := []string{"a", "", "", "b", "c"}
	for y, w := range want {
		if got := rowText(vt, y); got != w {
			t.Errorf("after IL: row %d = %q, want %q", y, got, w)
		}
	}

	feed(vt, "\x1b[2M") // delete them again
	want = []string{"a", "b", "c", "", ""}
	for y, w := range want {
		if got := rowText(vt, y); got != w {
			t.Errorf("after DL: row %d = %q, want %q", y, got, w)
		}
	}
	checkInvariants(t, vt)
}

func TestInsertDeleteEraseChars(t *testing.T) {
	vt := New(10, 2)
	feed(vt, "abcdef")

	feed(vt, "\x1b[1;3H\x1b[2@") // insert 2 blanks at column 3
	if got := rowText(vt, 0); got != "ab  cdef" {
		t.Errorf("after ICH: %q, want %q", got, "ab  cdef")
	}

	feed(vt, "\x1b[2P") // delete them
	if got := rowText(vt, 0); got != "abcdef" {
		t.Errorf("after DCH: %q, want %q", got, "abcdef")
	}

	before := vt.CursorX
	feed(vt, "\x1b[2X") // erase in place, no cursor move
	if got := rowText(vt, 0); got != "ab  ef" {
		t.Errorf("after ECH: %q, want %q", got, "ab  ef")
	}
	if vt.CursorX != before {
		t.Errorf("ECH moved the cursor from %d to %d", before, vt.CursorX)
	}
	checkInvariants(t, vt)
}

func TestEraseDisplayModes(t *testing.T) {
	vt := New(5, 3)
	feed(vt, "aaaaa\r\nbbbbb\r\nccccc")

	feed(vt, "\x1b[2;3H\x1b[0J")
	if got := rowText(vt, 0); got != "aaaaa" {
		t.Errorf("ED0 touched row 0: %q", got)
	}
	if got := rowText(vt, 1); got != "bb" {
		t.Errorf("ED0 row 1 = %q, want %q", got, "bb")
	}
	if got := rowText(vt, 2); got != "" {
		t.Errorf("ED0 row 2 = %q, want blank", got)
	}

	feed(vt, "\x1b[2J")
	for y := 0; y < 3; y++ {
		if got := rowText(vt, y); got != "" {
			t.Errorf("ED2 left row %d = %q", y, got)
		}
	}
	checkInvariants(t, vt)
}

func TestEraseDisplayClearsScrollback(t *testing.T) {
	vt := New(10, 3)
	for i := 0; i < 10; i++ {
		feed(vt, "x\r\n")
	}
	if len(vt.Scrollback) == 0 {
		t.Fatal("expected scrollback content")
	}

	feed(vt, "\x1b[3J")
	if len(vt.Scrollback) != 0 {
		t.Errorf("ED3 left %d scrollback rows", len(vt.Scrollback))
	}
}

func TestEraseLineModes(t *testing.T) {
	vt := New(5, 1)
	feed(vt, "abcde")
	feed(vt, "\x1b[1;3H")

	feed(vt, "\x1b[1K")
	if got := rowText(vt, 0); got != "   de" {
		t.Errorf("EL1 = %q, want %q", got, "   de")
	}

	feed(vt, "\x1b[2K")
	if got := rowText(vt, 0); got != "" {
		t.Errorf("EL2 = %q, want blank", got)
	}
}

func TestViewOffsetSnapsOnWrite(t *testing.T) {
	vt := New(10, 3)
	for i := 0; i < 10; i++ {
		feed(vt, "x\r\n")
	}

	vt.ScrollView(5)
	if vt.ViewOffset != 5 {
		t.Fatalf("ViewOffset = %d, want 5", vt.ViewOffset)
	}

	feed(vt, "y")
	if vt.ViewOffset != 0 {
		t.Errorf("write should snap view to live, got offset %d", vt.ViewOffset)
	}
}

func TestScrollViewClamping(t *testing.T) {
	vt := New(10, 3)
	for i := 0; i < 5; i++ {
		feed(vt, "x\r\n")
	}

	vt.ScrollView(1000)
	if vt.ViewOffset != len(vt.Scrollback) {
		t.Errorf("ViewOffset = %d, want %d", vt.ViewOffset, len(vt.Scrollback))
	}
	vt.ScrollView(-1000)
	if vt.ViewOffset != 0 {
		t.Errorf("ViewOffset = %d, want 0", vt.ViewOffset)
	}
}

func TestSaveRestoreCursor(t *testing.T) {
	vt := New(10, 5)
	feed(vt, "\x1b[31m")
	feed(vt, "\x1b[3;4H\x1b[s")
	feed(vt, "\x1b[0m\x1b[1;1H")
	feed(vt, "\x1b[u")

	if vt.CursorX != 3 || vt.CursorY != 2 {
		t.Errorf("cursor = (%d,%d), want (3,2)", vt.CursorX, vt.CursorY)
	}
	want := Color{Type: ColorIndexed, Value: 1}
	if vt.CurrentStyle.Fg != want {
		t.Errorf("restored fg = %+v, want %+v", vt.CurrentStyle.Fg, want)
	}
}

func TestDSRReportsCursor(t *testing.T) {
	vt := New(10, 5)
	var got []byte
	vt.SetResponseWriter(func(b []byte) { got = append(got, b...) })

	feed(vt, "\x1b[2;5H\x1b[6n")
	if string(got) != "\x1b[2;5R" {
		t.Errorf("DSR response = %q, want %q", got, "\x1b[2;5R")
	}
}

func TestReverseIndexScrollsDown(t *testing.T) {
	vt := New(10, 3)
	feed(vt, "a\r\nb\r\nc")
	feed(vt, "\x1b[1;1H")
	feed(vt, "\x1bM")

	want := []string{"", "a", "b"}
	for y, w := range want {
		if got := rowText(vt, y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
}

func TestOSCTitle(t *testing.T) {
	vt := New(10, 3)
	feed(vt, "\x1b]0;my title\x07after")
	if vt.Title != "my title" {
		t.Errorf("Title = %q, want %q", vt.Title, "my title")
	}
	if got := rowText(vt, 0); got != "after" {
		t.Errorf("text after OSC = %q, want %q", got, "after")
	}

	feed(vt, "\x1b]2;second\x1b\\more")
	if vt.Title != "second" {
		t.Errorf("Title = %q, want %q", vt.Title, "second")
	}
	if got := rowText(vt, 0); got != "aftermore" {
		t.Errorf("text after ST-terminated OSC = %q, want %q", got, "aftermore")
	}
}

func TestDECSCUSR(t *testing.T) {
	vt := New(10, 3)

	feed(vt, "\x1b[4 q")
	if vt.Shape != CursorUnderline || vt.CursorBlink {
		t.Errorf("after 4q: shape=%v blink=%v, want underline steady", vt.Shape, vt.CursorBlink)
	}

	feed(vt, "\x1b[5 q")
	if vt.Shape != CursorBar || !vt.CursorBlink {
		t.Errorf("after 5q: shape=%v blink=%v, want bar blinking", vt.Shape, vt.CursorBlink)
	}

	feed(vt, "\x1b[0 q")
	if vt.Shape != CursorBlock {
		t.Errorf("after 0q: shape=%v, want block", vt.Shape)
	}
}

func TestTabStops(t *testing.T) {
	vt := New(20, 2)
	feed(vt, "a\tb")
	if vt.CursorX != 9 {
		t.Errorf("cursor after tab+char = %d, want 9", vt.CursorX)
	}
	cell := vt.Screen[0][8]
	if cell.Rune != 'b' {
		t.Errorf("cell at tab stop = %q, want 'b'", cell.Rune)
	}
}

func TestBackspaceStopsAtColumnZero(t *testing.T) {
	vt := New(10, 2)
	feed(vt, "\b\b\b")
	if vt.CursorX != 0 {
		t.Errorf("cursor = %d, want 0", vt.CursorX)
	}
}
