package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/amterm/internal/pty"
	"github.com/andyrewlee/amterm/internal/vterm"
)

var (
	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#292e42")).
			Foreground(lipgloss.Color("#a9b1d6"))

	scrollStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#292e42")).
			Foreground(lipgloss.Color("#e0af68")).
			Bold(true)
)

func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if m.quitting {
		view.SetContent("")
		return view
	}

	snap := m.sess.Snapshot()
	content := renderContent(snap, m.blinkOn)
	view.SetContent(content + "\n" + m.statusLine(snap))
	return view
}

// renderContent turns a snapshot into an ANSI string, overlaying the
// cursor as reverse video during its visible blink phase.
func renderContent(snap *vterm.Snapshot, blinkOn bool) string {
	rows := snap.Screen

	cursorVisible := !snap.CursorHidden && snap.ViewOffset == 0
	if snap.CursorBlink && !blinkOn {
		cursorVisible = false
	}
	if cursorVisible && snap.CursorY >= 0 && snap.CursorY < len(rows) {
		if snap.CursorX >= 0 && snap.CursorX < len(rows[snap.CursorY]) {
			// Flip a copy of the cursor row so the snapshot itself is left
			// untouched and can be rendered again
			row := vterm.CopyLine(rows[snap.CursorY])
			row[snap.CursorX].Style.Reverse = !row[snap.CursorX].Style.Reverse
			rows = append([][]vterm.Cell(nil), rows...)
			rows[snap.CursorY] = row
		}
	}

	return vterm.RenderScreen(rows)
}

// statusLine renders the one-line bar under the terminal: title on the
// left, scrollback position on the right.
func (m *Model) statusLine(snap *vterm.Snapshot) string {
	title := snap.Title
	if title == "" {
		title = pty.DefaultShell()
	}

	right := ""
	if snap.ViewOffset > 0 {
		right = fmt.Sprintf(" [%d/%d] ", snap.ViewOffset, snap.ScrollbackLen)
	}

	width := m.width
	if width <= 0 {
		width = snap.Width
	}

	leftWidth := width - ansi.StringWidth(right)
	if leftWidth < 0 {
		leftWidth = 0
	}
	left := ansi.Truncate(" "+title, leftWidth, "…")
	pad := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if pad < 0 {
		pad = 0
	}

	return statusStyle.Render(left+strings.Repeat(" ", pad)) + scrollStyle.Render(right)
}
