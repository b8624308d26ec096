package input

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// Mouse button codes in the X10/SGR encoding.
const (
	mouseLeft      = 0
	mouseMiddle    = 1
	mouseRight     = 2
	mouseWheelUp   = 64
	mouseWheelDown = 65

	mouseModShift  = 4
	mouseModAlt    = 8
	mouseModCtrl   = 16
	mouseModMotion = 32
)

// MouseEvent is a pointer event in cell coordinates (0-indexed).
type MouseEvent struct {
	Col, Row int
	Button   int
	Press    bool // press or wheel; false = release
	Motion   bool // drag with a button held
	Shift    bool
	Alt      bool
	Ctrl     bool
}

// SGR encodes the event in the SGR mouse protocol (mode ?1006):
// ESC [ < b ; col ; row M (press/motion/wheel) or m (release),
// with 1-based coordinates.
func (e MouseEvent) SGR() []byte {
	b := e.Button
	if e.Shift {
		b |= mouseModShift
	}
	if e.Alt {
		b |= mouseModAlt
	}
	if e.Ctrl {
		b |= mouseModCtrl
	}
	if e.Motion {
		b |= mouseModMotion
	}

	final := byte('M')
	if !e.Press {
		final = 'm'
	}
	return []byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", b, e.Col+1, e.Row+1, final))
}

// buttonCode maps a bubbletea button to the wire encoding; ok is false
// for buttons the protocol cannot express.
func buttonCode(btn tea.MouseButton) (int, bool) {
	switch btn {
	case tea.MouseLeft:
		return mouseLeft, true
	case tea.MouseMiddle:
		return mouseMiddle, true
	case tea.MouseRight:
		return mouseRight, true
	case tea.MouseWheelUp:
		return mouseWheelUp, true
	case tea.MouseWheelDown:
		return mouseWheelDown, true
	default:
		return 0, false
	}
}

// MouseClick encodes a button press if the shell enabled tracking.
func MouseClick(msg tea.MouseClickMsg, tracking, sgr bool) []byte {
	if !tracking || !sgr {
		return nil
	}
	code, ok := buttonCode(msg.Button)
	if !ok {
		return nil
	}
	return MouseEvent{Col: msg.X, Row: msg.Y, Button: code, Press: true}.SGR()
}

// MouseRelease encodes a button release if the shell enabled tracking.
func MouseRelease(msg tea.MouseReleaseMsg, tracking, sgr bool) []byte {
	if !tracking || !sgr {
		return nil
	}
	code, ok := buttonCode(msg.Button)
	if !ok {
		return nil
	}
	return MouseEvent{Col: msg.X, Row: msg.Y, Button: code, Press: false}.SGR()
}

// MouseWheel encodes a wheel tick; wheel events never see releases.
func MouseWheel(msg tea.MouseWheelMsg, tracking, sgr bool) []byte {
	if !tracking || !sgr {
		return nil
	}
	code, ok := buttonCode(msg.Button)
	if !ok {
		return nil
	}
	return MouseEvent{Col: msg.X, Row: msg.Y, Button: code, Press: true}.SGR()
}

// MouseMotion encodes a drag when cell-motion tracking (mode ?1002) is on.
func MouseMotion(msg tea.MouseMotionMsg, cellMotion, sgr bool) []byte {
	if !cellMotion || !sgr {
		return nil
	}
	code, ok := buttonCode(msg.Button)
	if !ok {
		return nil
	}
	return MouseEvent{Col: msg.X, Row: msg.Y, Button: code, Press: true, Motion: true}.SGR()
}
