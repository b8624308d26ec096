package vterm

import (
	"fmt"

	"github.com/andyrewlee/amterm/internal/logging"
)

func (p *Parser) executeDSR() {
	if len(p.params) == 0 {
		return
	}

	switch p.params[0] {
	case 5: // Status report - respond "OK"
		p.vt.respond([]byte("\x1b[0n"))
	case 6: // Cursor position report
		// Response: ESC [ row ; col R (1-indexed)
		row := p.vt.CursorY + 1
		col := p.vt.CursorX + 1
		p.vt.respond([]byte(fmt.Sprintf("\x1b[%d;%dR", row, col)))
	}
}

func (p *Parser) executeMode(set bool) {
	if p.intermediate != '?' {
		// ANSI modes (IRM, LNM, ...) are not implemented
		logging.Debug("vterm: unhandled ANSI mode %v set=%v", p.params, set)
		return
	}

	for _, param := range p.params {
		switch param {
		case 1: // DECCKM - application cursor keys
			p.vt.AppCursorKeys = set
		case 6: // DECOM - origin mode
			p.vt.OriginMode = set
			p.vt.wrapNext = false
			p.vt.CursorX = 0
			if set {
				p.vt.CursorY = p.vt.ScrollTop
			} else {
				p.vt.CursorY = 0
			}
			p.vt.clampCursor()
		case 7: // DECAWM - auto-wrap mode
			p.vt.AutoWrap = set
			if !set {
				p.vt.wrapNext = false
			}
		case 12: // Blinking cursor
			p.vt.CursorBlink = set
		case 25: // DECTCEM - cursor visible
			p.vt.CursorHidden = !set
		case 47, 1047: // Alternate screen buffer
			if set {
				p.vt.enterAltScreen(false)
			} else {
				p.vt.exitAltScreen()
			}
		case 1049: // Alternate screen buffer + save/restore cursor
			if set {
				p.vt.enterAltScreen(true)
			} else {
				p.vt.exitAltScreen()
			}
		case 1000: // Mouse button tracking
			p.vt.MouseTracking = set
		case 1002: // Mouse cell motion tracking
			p.vt.MouseCellMotion = set
		case 1004: // Focus in/out events
			p.vt.FocusEvents = set
		case 1006: // SGR mouse encoding
			p.vt.MouseSGR = set
		case 2004: // Bracketed paste mode
			p.vt.BracketedPaste = set
		case 2026: // Synchronized output
			p.vt.setSynchronizedOutput(set)
		default:
			logging.Debug("vterm: unhandled DEC private mode %d set=%v", param, set)
		}
	}
}

func (p *Parser) executeDECRQM() {
	if len(p.params) == 0 {
		return
	}

	for _, param := range p.params {
		status := 0
		switch param {
		case 2026:
			if p.vt.syncActive {
				status = 1
			} else {
				status = 2
			}
		default:
			status = 0
		}
		p.vt.respond([]byte(fmt.Sprintf("\x1b[?%d;%d$y", param, status)))
	}
}

// setCursorShape applies a DECSCUSR parameter.
func (v *VTerm) setCursorShape(param int) {
	switch param {
	case 0, 1:
		v.Shape = CursorBlock
		v.CursorBlink = true
	case 2:
		v.Shape = CursorBlock
		v.CursorBlink = false
	case 3:
		v.Shape = CursorUnderline
		v.CursorBlink = true
	case 4:
		v.Shape = CursorUnderline
		v.CursorBlink = false
	case 5:
		v.Shape = CursorBar
		v.CursorBlink = true
	case 6:
		v.Shape = CursorBar
		v.CursorBlink = false
	default:
		logging.Debug("vterm: unhandled DECSCUSR parameter %d", param)
	}
}
