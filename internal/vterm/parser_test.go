package vterm

import (
	"testing"
	"unicode/utf8"
)

// screensEqual compares visible content and cursor position of two terminals.
func screensEqual(a, b *VTerm) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	if a.CursorX != b.CursorX || a.CursorY != b.CursorY {
		return false
	}
	for y := range a.Screen {
		for x := range a.Screen[y] {
			if a.Screen[y][x] != b.Screen[y][x] {
				return false
			}
		}
	}
	return true
}

func TestSplitByteParsing(t *testing.T) {
	input := "\x1b[31mA\x1b[0mB\x1b]0;t\x07\x1b[2;2Hxy\xe6\xbc\xa2"

	// Feed the whole stream at once
	whole := New(20, 5)
	whole.Write([]byte(input))

	// Feed the stream at every possible split point
	for split := 1; split < len(input); split++ {
		vt := New(20, 5)
		vt.Write([]byte(input[:split]))
		vt.Write([]byte(input[split:]))
		if !screensEqual(whole, vt) {
			t.Fatalf("split at byte %d diverges from single-chunk parse", split)
		}
	}
}

func TestSplitByteParsingBytewise(t *testing.T) {
	input := "\x1b[38;5;196mX\x1b[48;2;10;20;30mY\x1b[0m\r\nplain"

	whole := New(20, 5)
	whole.Write([]byte(input))

	vt := New(20, 5)
	for i := 0; i < len(input); i++ {
		vt.Write([]byte{input[i]})
	}
	if !screensEqual(whole, vt) {
		t.Fatal("byte-at-a-time parse diverges from single-chunk parse")
	}
}

func TestInvalidUTF8BecomesReplacement(t *testing.T) {
	vt := New(10, 2)
	vt.Write([]byte{0xC3})
	vt.Write([]byte{'('})

	if got := vt.Screen[0][0].Rune; got != utf8.RuneError {
		t.Errorf("cell 0 = %q, want U+FFFD", got)
	}
	if got := vt.Screen[0][1].Rune; got != '(' {
		t.Errorf("cell 1 = %q, want '('", got)
	}
}

func TestStrayContinuationByte(t *testing.T) {
	vt := New(10, 2)
	vt.Write([]byte{0x80, 'a'})

	if got := vt.Screen[0][0].Rune; got != utf8.RuneError {
		t.Errorf("cell 0 = %q, want U+FFFD", got)
	}
	if got := vt.Screen[0][1].Rune; got != 'a' {
		t.Errorf("cell 1 = %q, want 'a'", got)
	}
}

func TestMultibyteAcrossChunks(t *testing.T) {
	vt := New(10, 2)
	b := []byte("漢字")
	for _, c := range b {
		vt.Write([]byte{c})
	}

	if got := vt.Screen[0][0].Rune; got != '漢' {
		t.Errorf("cell 0 = %q, want 漢", got)
	}
	if vt.Screen[0][1].Width != 0 {
		t.Errorf("cell 1 should be a continuation cell, width=%d", vt.Screen[0][1].Width)
	}
	if got := vt.Screen[0][2].Rune; got != '字' {
		t.Errorf("cell 2 = %q, want 字", got)
	}
}

func TestUnknownCSIIgnored(t *testing.T) {
	vt := New(10, 2)
	feed(vt, "a\x1b[99zb")

	if got := rowText(vt, 0); got != "ab" {
		t.Errorf("row = %q, want %q", got, "ab")
	}
}

func TestUnknownOSCIgnored(t *testing.T) {
	vt := New(20, 2)
	feed(vt, "a\x1b]52;c;Zm9v\x07b")

	if got := rowText(vt, 0); got != "ab" {
		t.Errorf("row = %q, want %q", got, "ab")
	}
}

func TestDCSConsumed(t *testing.T) {
	vt := New(20, 2)
	feed(vt, "a\x1bPsome payload\x1b\\b")

	if got := rowText(vt, 0); got != "ab" {
		t.Errorf("row = %q, want %q", got, "ab")
	}
}

func TestCharsetDesignationSkipped(t *testing.T) {
	vt := New(10, 2)
	feed(vt, "a\x1b(Bb")

	if got := rowText(vt, 0); got != "ab" {
		t.Errorf("row = %q, want %q", got, "ab")
	}
}

func TestControlCharsInsideText(t *testing.T) {
	vt := New(10, 3)
	feed(vt, "ab\rc")
	if got := rowText(vt, 0); got != "cb" {
		t.Errorf("CR overwrite: %q, want %q", got, "cb")
	}

	vt = New(10, 3)
	feed(vt, "a\vb") // VT acts as line feed
	if got := rowText(vt, 1); got != " b" {
		t.Errorf("after VT: row 1 = %q, want %q", got, " b")
	}
}

func TestEscInterruptsCSI(t *testing.T) {
	vt := New(10, 2)
	feed(vt, "\x1b[3\x1b[31mA")

	want := Color{Type: ColorIndexed, Value: 1}
	if vt.Screen[0][0].Rune != 'A' || vt.Screen[0][0].Style.Fg != want {
		t.Errorf("restarted CSI not applied: %+v", vt.Screen[0][0])
	}
}

func TestDeviceAttributesResponse(t *testing.T) {
	vt := New(10, 2)
	var got []byte
	vt.SetResponseWriter(func(b []byte) { got = append(got, b...) })

	feed(vt, "\x1b[c")
	if string(got) != "\x1b[?62;22c" {
		t.Errorf("DA response = %q", got)
	}
}
