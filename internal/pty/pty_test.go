package pty

import (
	"bytes"
	"testing"
	"time"
)

func TestSpawnFailureSurfaces(t *testing.T) {
	if _, err := New("/definitely/not/a/shell", 80, 24); err == nil {
		t.Fatal("expected error spawning a nonexistent command")
	}
}

func TestShellExitClosesChannel(t *testing.T) {
	h, err := New("true", 80, 24)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	defer h.Close()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-h.Output():
			if !ok {
				// channel closed, Done must follow
				select {
				case <-h.Done():
				case <-deadline:
					t.Fatal("Done not signalled after channel close")
				}
				return
			}
		case <-deadline:
			t.Fatal("output channel never closed after child exit")
		}
	}
}

func TestWriteEcho(t *testing.T) {
	h, err := New("cat", 80, 24)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	defer h.Close()

	if _, err := h.Write([]byte("hello\r")); err != nil {
		t.Fatalf("write: %v", err)
	}

	var got bytes.Buffer
	deadline := time.After(5 * time.Second)
	for !bytes.Contains(got.Bytes(), []byte("hello")) {
		select {
		case chunk, ok := <-h.Output():
			if !ok {
				t.Fatalf("channel closed early, collected %q", got.String())
			}
			got.Write(chunk)
		case <-deadline:
			t.Fatalf("timed out waiting for echo, collected %q", got.String())
		}
	}
}

func TestResize(t *testing.T) {
	h, err := New("cat", 80, 24)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	defer h.Close()

	if err := h.Resize(132, 50); err != nil {
		t.Fatalf("resize: %v", err)
	}
}

func TestWriteAfterClose(t *testing.T) {
	h, err := New("cat", 80, 24)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	h.Close()

	if _, err := h.Write([]byte("x")); err == nil {
		t.Fatal("expected error writing to a closed host")
	}
}

func TestDefaultShellFallback(t *testing.T) {
	t.Setenv("SHELL", "")
	if got := DefaultShell(); got != "/bin/sh" {
		t.Errorf("DefaultShell() = %q, want /bin/sh", got)
	}

	t.Setenv("SHELL", "/bin/bash")
	if got := DefaultShell(); got != "/bin/bash" {
		t.Errorf("DefaultShell() = %q, want /bin/bash", got)
	}
}
