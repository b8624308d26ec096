// Package ui renders one terminal session as a bubbletea program.
package ui

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"

	"github.com/andyrewlee/amterm/internal/config"
	"github.com/andyrewlee/amterm/internal/input"
	"github.com/andyrewlee/amterm/internal/logging"
	"github.com/andyrewlee/amterm/internal/session"
)

const statusBarHeight = 1

// wheelScrollLines is how far a wheel tick moves the local viewport when
// the shell has not claimed the mouse.
const wheelScrollLines = 3

type outputMsg []byte

type shellExitedMsg struct{}

type blinkMsg struct{}

// ConfigReloadedMsg is sent by the config watcher when the user edits
// the config file while amterm runs.
type ConfigReloadedMsg struct {
	Config config.Config
}

type keyMap struct {
	CopyScreen   key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	ScrollTop    key.Binding
	ScrollBottom key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		CopyScreen:   key.NewBinding(key.WithKeys("ctrl+shift+c")),
		ScrollUp:     key.NewBinding(key.WithKeys("shift+pgup")),
		ScrollDown:   key.NewBinding(key.WithKeys("shift+pgdown")),
		ScrollTop:    key.NewBinding(key.WithKeys("shift+home")),
		ScrollBottom: key.NewBinding(key.WithKeys("shift+end")),
	}
}

// Model drives one Session: it drains shell output, forwards input, and
// renders snapshots.
type Model struct {
	sess *session.Session
	keys keyMap

	width  int
	height int

	blinkOn    bool
	blinkEvery time.Duration

	quitting bool
}

// New builds the model around an already-spawned session.
func New(sess *session.Session, cfg config.Config) *Model {
	return &Model{
		sess:       sess,
		keys:       defaultKeyMap(),
		blinkOn:    true,
		blinkEvery: time.Duration(cfg.CursorBlinkMs) * time.Millisecond,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitOutput, m.blinkTick())
}

// waitOutput blocks on the session's output channel from a command
// goroutine; the chunk is applied in Update, on the program goroutine,
// so the terminal state has a single writer.
func (m *Model) waitOutput() tea.Msg {
	chunk, ok := <-m.sess.Output()
	if !ok {
		return shellExitedMsg{}
	}
	return outputMsg(chunk)
}

func (m *Model) blinkTick() tea.Cmd {
	return tea.Tick(m.blinkEvery, func(time.Time) tea.Msg { return blinkMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outputMsg:
		m.sess.Feed(msg)
		if !m.sess.ProcessOutput() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.waitOutput

	case shellExitedMsg:
		logging.Info("ui: shell exited, quitting")
		m.quitting = true
		return m, tea.Quit

	case blinkMsg:
		m.blinkOn = !m.blinkOn
		return m, m.blinkTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cols, rows := msg.Width, msg.Height-statusBarHeight
		if cols < 1 || rows < 1 {
			return m, nil
		}
		if err := m.sess.Resize(cols, rows); err != nil {
			logging.Warn("ui: resize failed: %v", err)
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.updateKey(msg)

	case tea.PasteMsg:
		snap := m.sess.Snapshot()
		m.writeInput(input.Paste(msg.Content, snap.BracketedPaste))
		return m, nil

	case tea.MouseClickMsg:
		snap := m.sess.Snapshot()
		if b := input.MouseClick(msg, snap.MouseTracking || snap.MouseCellMotion, snap.MouseSGR); b != nil {
			m.writeInput(b)
		}
		return m, nil

	case tea.MouseReleaseMsg:
		snap := m.sess.Snapshot()
		if b := input.MouseRelease(msg, snap.MouseTracking || snap.MouseCellMotion, snap.MouseSGR); b != nil {
			m.writeInput(b)
		}
		return m, nil

	case tea.MouseMotionMsg:
		snap := m.sess.Snapshot()
		if b := input.MouseMotion(msg, snap.MouseCellMotion, snap.MouseSGR); b != nil {
			m.writeInput(b)
		}
		return m, nil

	case tea.MouseWheelMsg:
		return m.updateWheel(msg)

	case tea.FocusMsg:
		if m.sess.Snapshot().FocusEvents {
			m.writeInput(input.FocusEvent(true))
		}
		return m, nil

	case tea.BlurMsg:
		if m.sess.Snapshot().FocusEvents {
			m.writeInput(input.FocusEvent(false))
		}
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	term := m.sess.Term()

	switch {
	case key.Matches(msg, m.keys.CopyScreen):
		text := term.VisibleText()
		if err := clipboard.WriteAll(text); err != nil {
			logging.Warn("ui: clipboard copy failed: %v", err)
		}
		return m, nil
	case key.Matches(msg, m.keys.ScrollUp):
		term.ScrollView(m.pageStep())
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		term.ScrollView(-m.pageStep())
		return m, nil
	case key.Matches(msg, m.keys.ScrollTop):
		term.ScrollViewToTop()
		return m, nil
	case key.Matches(msg, m.keys.ScrollBottom):
		term.ScrollViewToBottom()
		return m, nil
	}

	b := input.KeyToBytes(msg, term.AppCursorKeys)
	if b == nil {
		logging.Debug("ui: no encoding for key %s", msg.String())
		return m, nil
	}
	// Typing always snaps back to the live screen
	term.ScrollViewToBottom()
	m.writeInput(b)
	return m, nil
}

func (m *Model) updateWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	snap := m.sess.Snapshot()
	if b := input.MouseWheel(msg, snap.MouseTracking || snap.MouseCellMotion, snap.MouseSGR); b != nil {
		m.writeInput(b)
		return m, nil
	}

	// The shell does not own the mouse: scroll the local viewport
	term := m.sess.Term()
	switch msg.Button {
	case tea.MouseWheelUp:
		term.ScrollView(wheelScrollLines)
	case tea.MouseWheelDown:
		term.ScrollView(-wheelScrollLines)
	}
	return m, nil
}

func (m *Model) writeInput(b []byte) {
	if err := m.sess.WriteInput(b); err != nil {
		logging.Error("ui: write to shell failed: %v", err)
	}
}

func (m *Model) pageStep() int {
	step := m.height - statusBarHeight - 1
	if step < 1 {
		step = 1
	}
	return step
}

func (m *Model) applyConfig(cfg config.Config) {
	m.sess.Term().SetMaxScrollback(cfg.MaxScrollback)
	if cfg.CursorBlinkMs > 0 {
		m.blinkEvery = time.Duration(cfg.CursorBlinkMs) * time.Millisecond
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))
}
