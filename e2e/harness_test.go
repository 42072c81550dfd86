// ABOUTME: PTY harness for end-to-end tests against the real popup-demo binary
// ABOUTME: Builds the binary once, then drives it through a pseudo-terminal

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	buildErr  error
	demoPath  string
)

// demoBinary builds cmd/popup-demo once per test run and returns its path.
func demoBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "popup-demo-e2e")
		if err != nil {
			buildErr = err
			return
		}
		demoPath = filepath.Join(dir, "popup-demo")
		cmd := exec.Command("go", "build", "-o", demoPath, "../cmd/popup-demo")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = err
			t.Logf("build output:\n%s", out)
		}
	})
	if buildErr != nil {
		t.Fatalf("building demo binary: %v", buildErr)
	}
	return demoPath
}

// session wraps a demo process running under a PTY.
type session struct {
	cmd    *exec.Cmd
	tty    *os.File
	exited chan error

	mu  sync.Mutex
	buf bytes.Buffer
}

// startDemo launches the demo binary with the given arguments on a PTY and
// starts capturing its output.
func startDemo(t *testing.T, args ...string) *session {
	t.Helper()

	cmd := exec.Command(demoBinary(t), args...)
	// termenv-based color detection (bubbletea's init, glamour's auto style)
	// queries the terminal and blocks on a 5s timeout when the reply races
	// with bubbletea's own input reader. CI=1 makes termenv skip the queries.
	cmd.Env = append(os.Environ(), "CI=1")
	tty, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("starting demo under pty: %v", err)
	}

	s := &session{cmd: cmd, tty: tty, exited: make(chan error, 1)}

	go func() {
		chunk := make([]byte, 4096)
		for {
			n, err := tty.Read(chunk)
			if n > 0 {
				s.mu.Lock()
				s.buf.Write(chunk[:n])
				s.mu.Unlock()
				s.respondToQueries(chunk[:n])
			}
			if err != nil {
				return
			}
		}
	}()

	go func() {
		s.exited <- cmd.Wait()
	}()

	return s
}

// close kills the process if it is still running and releases the PTY.
func (s *session) close() {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.tty.Close()
}

// respondToQueries answers terminal status queries the way a real terminal
// would. Without a reply the process blocks on termenv's 5s query timeout at
// startup, which is the same deadline the tests use.
func (s *session) respondToQueries(chunk []byte) {
	for i := bytes.Count(chunk, []byte("\x1b]11;?")); i > 0; i-- {
		_, _ = s.tty.Write([]byte("\x1b]11;rgb:0000/0000/0000\x1b\\"))
	}
	for i := bytes.Count(chunk, []byte("\x1b[6n")); i > 0; i-- {
		_, _ = s.tty.Write([]byte("\x1b[1;1R"))
	}
}

// output returns everything the process has written so far.
func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// expectString polls the captured output until want appears or the timeout
// elapses.
func (s *session) expectString(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("output never contained %q; got:\n%s", want, s.output())
}

// send writes raw bytes to the PTY, as if typed by the user.
func (s *session) send(t *testing.T, input string) {
	t.Helper()
	if _, err := s.tty.Write([]byte(input)); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

// sendEnter and sendEscape send the respective key codes.
func (s *session) sendEnter(t *testing.T)  { s.send(t, "\r") }
func (s *session) sendEscape(t *testing.T) { s.send(t, "\x1b") }

// waitExit blocks until the process exits or the timeout elapses.
func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case <-s.exited:
	case <-time.After(timeout):
		t.Fatalf("process did not exit within %v; output:\n%s", timeout, s.output())
	}
}
