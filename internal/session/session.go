// Package session ties a virtual terminal to a shell on a PTY and
// presents a single façade to the host application.
package session

import (
	"github.com/andyrewlee/amterm/internal/logging"
	"github.com/andyrewlee/amterm/internal/pty"
	"github.com/andyrewlee/amterm/internal/vterm"
)

// Config tunes a new session. Zero values select the defaults.
type Config struct {
	// Shell overrides $SHELL for the child process.
	Shell string

	// MaxScrollback caps the scrollback buffer in lines.
	MaxScrollback int
}

// Session owns a VTerm, its parser, and the PTY host. The terminal is
// only ever mutated from the caller's goroutine: the PTY reader hands
// chunks over a channel and Feed/ProcessOutput apply them here.
type Session struct {
	term   *vterm.VTerm
	host   *pty.Host
	closed bool
}

// New creates the terminal state and spawns the shell. A spawn failure
// is fatal and returned to the caller.
func New(cols, rows int, cfg Config) (*Session, error) {
	term := vterm.New(cols, rows)
	if cfg.MaxScrollback > 0 {
		term.SetMaxScrollback(cfg.MaxScrollback)
	}

	host, err := pty.New(cfg.Shell, cols, rows)
	if err != nil {
		return nil, err
	}

	// Terminal queries (DSR, DA) answer straight back into the shell's
	// input; replies are produced while feeding output, on the caller's
	// goroutine.
	term.SetResponseWriter(func(b []byte) {
		if _, werr := host.Write(b); werr != nil {
			logging.Warn("session: query response write failed: %v", werr)
		}
	})

	return &Session{term: term, host: host}, nil
}

// Output exposes the host's in-order output channel so event-loop hosts
// can block on it from a helper goroutine.
func (s *Session) Output() <-chan []byte {
	return s.host.Output()
}

// Feed applies one chunk of shell output to the terminal.
func (s *Session) Feed(data []byte) {
	if len(data) == 0 {
		return
	}
	s.term.Write(data)
}

// ProcessOutput drains all currently available output without blocking
// and applies it in channel order. It returns false once the shell has
// exited and the channel is fully drained.
func (s *Session) ProcessOutput() bool {
	for {
		select {
		case chunk, ok := <-s.host.Output():
			if !ok {
				s.closed = true
				return false
			}
			s.term.Write(chunk)
		default:
			return true
		}
	}
}

// WriteInput forwards input bytes to the shell.
func (s *Session) WriteInput(b []byte) error {
	_, err := s.host.Write(b)
	return err
}

// Resize resizes the grid first, then the PTY, so the child's SIGWINCH
// handler reads a size the display already honors.
func (s *Session) Resize(cols, rows int) error {
	s.term.Resize(cols, rows)
	return s.host.Resize(cols, rows)
}

// Snapshot returns a read-only view of the terminal for rendering.
func (s *Session) Snapshot() *vterm.Snapshot {
	return s.term.Snapshot()
}

// Term exposes the terminal for view scrolling and configuration.
func (s *Session) Term() *vterm.VTerm {
	return s.term
}

// Alive reports whether the shell is still attached.
func (s *Session) Alive() bool {
	return !s.closed && s.host.Running()
}

// Close releases the PTY; the child exits via SIGHUP.
func (s *Session) Close() error {
	s.closed = true
	return s.host.Close()
}
