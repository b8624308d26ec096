// Package input translates physical events into the byte sequences a
// shell expects on its PTY.
package input

import (
	tea "charm.land/bubbletea/v2"
)

// KeyToBytes converts a key press to terminal input bytes. appCursor
// selects the application cursor key encoding (DECCKM, mode ?1).
func KeyToBytes(msg tea.KeyPressMsg, appCursor bool) []byte {
	key := msg.Key()

	if key.Mod&tea.ModCtrl != 0 {
		code := key.Code
		// ctrl+i is tab and ctrl+m is enter; both handled below
		if code >= 'a' && code <= 'z' && code != 'i' && code != 'm' {
			return []byte{byte(code-'a') + 1}
		}
		switch code {
		case ' ':
			return []byte{0x00}
		case '[':
			return []byte{0x1b}
		case '\\':
			return []byte{0x1c}
		case ']':
			return []byte{0x1d}
		}
	}

	switch key.Code {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		if key.Mod&tea.ModShift != 0 {
			return []byte{0x1b, '[', 'Z'}
		}
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyEscape:
		return []byte{0x1b}
	case tea.KeyUp:
		return arrowKey('A', key.Mod, appCursor)
	case tea.KeyDown:
		return arrowKey('B', key.Mod, appCursor)
	case tea.KeyRight:
		return arrowKey('C', key.Mod, appCursor)
	case tea.KeyLeft:
		return arrowKey('D', key.Mod, appCursor)
	case tea.KeyHome:
		return []byte{0x1b, '[', 'H'}
	case tea.KeyEnd:
		return []byte{0x1b, '[', 'F'}
	case tea.KeyDelete:
		return []byte{0x1b, '[', '3', '~'}
	case tea.KeyInsert:
		return []byte{0x1b, '[', '2', '~'}
	case tea.KeyPgUp:
		return []byte{0x1b, '[', '5', '~'}
	case tea.KeyPgDown:
		return []byte{0x1b, '[', '6', '~'}
	}

	// Function keys arrive with distinct string names across terminals;
	// match on the canonical form
	switch msg.String() {
	case "f1":
		return []byte{0x1b, 'O', 'P'}
	case "f2":
		return []byte{0x1b, 'O', 'Q'}
	case "f3":
		return []byte{0x1b, 'O', 'R'}
	case "f4":
		return []byte{0x1b, 'O', 'S'}
	case "f5":
		return []byte("\x1b[15~")
	case "f6":
		return []byte("\x1b[17~")
	case "f7":
		return []byte("\x1b[18~")
	case "f8":
		return []byte("\x1b[19~")
	case "f9":
		return []byte("\x1b[20~")
	case "f10":
		return []byte("\x1b[21~")
	case "f11":
		return []byte("\x1b[23~")
	case "f12":
		return []byte("\x1b[24~")
	}

	if key.Mod&tea.ModAlt != 0 && key.Text != "" {
		return append([]byte{0x1b}, []byte(key.Text)...)
	}

	if key.Text != "" {
		return []byte(key.Text)
	}

	if s := msg.String(); len(s) == 1 {
		return []byte(s)
	}

	return nil
}

// arrowKey encodes a cursor key: CSI by default, SS3 in application
// cursor key mode, and the modifier form when alt is held.
func arrowKey(final byte, mod tea.KeyMod, appCursor bool) []byte {
	if mod&tea.ModAlt != 0 {
		return []byte{0x1b, '[', '1', ';', '3', final}
	}
	if appCursor {
		return []byte{0x1b, 'O', final}
	}
	return []byte{0x1b, '[', final}
}

// Paste encodes pasted text, wrapping it in bracketed paste markers when
// the application requested them (mode ?2004).
func Paste(text string, bracketed bool) []byte {
	if !bracketed {
		return []byte(text)
	}
	out := make([]byte, 0, len(text)+12)
	out = append(out, "\x1b[200~"...)
	out = append(out, text...)
	out = append(out, "\x1b[201~"...)
	return out
}

// FocusEvent encodes a focus change (mode ?1004).
func FocusEvent(focused bool) []byte {
	if focused {
		return []byte{0x1b, '[', 'I'}
	}
	return []byte{0x1b, '[', 'O'}
}
