package vterm

import "testing"

func FuzzANSIParser(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte("\x1b[31mred\x1b[0m"))
	f.Add([]byte("\x1b[?1049h\x1b[H\x1b[2J"))
	f.Add([]byte("\x1b[3;5r\x1b[5;1H\n\x1b[2L\x1b[M"))
	f.Add([]byte("\x1b]0;title\x07\x1bP payload \x1b\\"))
	f.Add([]byte{0xf0, 0x9f, 0x92, 0xa9, 0xc3, 0x28, 0x80})
	f.Fuzz(func(t *testing.T, data []byte) {
		vt := New(40, 12)
		vt.Write(data)

		if len(vt.Screen) != vt.Height {
			t.Fatalf("screen has %d rows, want %d", len(vt.Screen), vt.Height)
		}
		for y, row := range vt.Screen {
			if len(row) != vt.Width {
				t.Fatalf("row %d has %d cells, want %d", y, len(row), vt.Width)
			}
		}
		if vt.CursorX < 0 || vt.CursorX >= vt.Width || vt.CursorY < 0 || vt.CursorY >= vt.Height {
			t.Fatalf("cursor (%d,%d) escaped bounds", vt.CursorX, vt.CursorY)
		}
		if len(vt.Scrollback) > vt.maxScrollback {
			t.Fatalf("scrollback exceeded capacity: %d", len(vt.Scrollback))
		}
	})
}

func FuzzSplitParsing(f *testing.F) {
	f.Add([]byte("\x1b[31mA\x1b[0mB"), 3)
	f.Add([]byte("\x1b[38;5;196mX"), 5)
	f.Add([]byte("\xe6\xbc\xa2\xe5\xad\x97"), 2)
	f.Fuzz(func(t *testing.T, data []byte, split int) {
		if len(data) == 0 {
			return
		}
		split = ((split % len(data)) + len(data)) % len(data)

		whole := New(20, 6)
		whole.Write(data)

		parts := New(20, 6)
		parts.Write(data[:split])
		parts.Write(data[split:])

		if !screensEqual(whole, parts) {
			t.Fatalf("split at %d diverges from single-chunk parse", split)
		}
	})
}
