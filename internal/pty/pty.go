// Package pty spawns a shell on a pseudo-terminal and pumps its output
// through an in-order byte channel.
package pty

import (
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"

	"github.com/andyrewlee/amterm/internal/logging"
	"github.com/andyrewlee/amterm/internal/safego"
)

const (
	// readBufferSize is the reader's per-call buffer.
	readBufferSize = 4096

	// outputQueueSize bounds in-flight chunks between the reader and the
	// consumer. The reader blocks when the queue is full, so the kernel
	// read rate is the natural back-pressure.
	outputQueueSize = 64
)

// DefaultShell returns $SHELL, falling back to /bin/sh.
func DefaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}

// Host owns the PTY master, the child process, and the reader goroutine.
type Host struct {
	mu      sync.Mutex
	ptmx    *os.File
	cmd     *exec.Cmd
	closed  bool
	readErr error

	out  chan []byte
	done chan struct{}
	quit chan struct{}

	reapOnce sync.Once
}

// New spawns command (empty = DefaultShell) on a fresh PTY sized to
// cols x rows and starts the reader. The child gets the slave as its
// controlling terminal with TERM=xterm-256color.
func New(command string, cols, rows int) (*Host, error) {
	if command == "" {
		command = DefaultShell()
	}

	cmd := exec.Command(command)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", command, err)
	}

	h := &Host{
		ptmx: ptmx,
		cmd:  cmd,
		out:  make(chan []byte, outputQueueSize),
		done: make(chan struct{}),
		quit: make(chan struct{}),
	}
	safego.Go("pty.read_loop", h.readLoop)
	logging.Info("pty: spawned %s (pid %d) at %dx%d", command, cmd.Process.Pid, cols, rows)
	return h, nil
}

// readLoop blocks on the master and forwards each chunk in read order.
// Any read error (EOF, EIO after child exit, closed fd) ends the loop,
// closes the output channel and reaps the child.
func (h *Host) readLoop() {
	buf := make([]byte, readBufferSize)
	for {
		n, err := h.ptmx.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case h.out <- chunk:
			case <-h.quit:
				close(h.out)
				h.reap()
				return
			}
		}
		if err != nil {
			h.mu.Lock()
			h.readErr = err
			h.mu.Unlock()
			logging.Debug("pty: read loop ended: %v", err)
			close(h.out)
			h.reap()
			return
		}
	}
}

// reap waits for the child once and signals Done.
func (h *Host) reap() {
	h.reapOnce.Do(func() {
		if h.cmd != nil && h.cmd.Process != nil {
			h.cmd.Wait()
		}
		close(h.done)
	})
}

// Output returns the channel of shell output chunks. It is closed when
// the shell exits or the host is closed.
func (h *Host) Output() <-chan []byte {
	return h.out
}

// Done is signalled after the output channel closes and the child has
// been reaped.
func (h *Host) Done() <-chan struct{} {
	return h.done
}

// ReadErr returns the error that ended the read loop, if any.
func (h *Host) ReadErr() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.readErr
}

// Write sends input bytes to the shell.
func (h *Host) Write(p []byte) (int, error) {
	h.mu.Lock()
	closed := h.closed
	ptmx := h.ptmx
	h.mu.Unlock()

	if closed || ptmx == nil {
		return 0, os.ErrClosed
	}
	return ptmx.Write(p)
}

// Resize informs the kernel of the new window size; the child receives
// SIGWINCH and subsequent size queries report cols x rows.
func (h *Host) Resize(cols, rows int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || h.ptmx == nil {
		return nil
	}
	return pty.Setsize(h.ptmx, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

// Running reports whether the child process has not yet exited.
func (h *Host) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || h.cmd == nil {
		return false
	}
	return h.cmd.ProcessState == nil
}

// Close tears the session down: closing the master delivers SIGHUP to
// the child's session, the reader unblocks, and the child is reaped.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	ptmx := h.ptmx
	h.mu.Unlock()

	close(h.quit)
	if ptmx != nil {
		ptmx.Close()
	}
	return nil
}
