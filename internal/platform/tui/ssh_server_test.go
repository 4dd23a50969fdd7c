package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

// fakeSession records what the server writes back and how it ends.
type fakeSession struct {
	ssh.Session
	user   string
	stderr bytes.Buffer
	exit   int
	closed bool
}

func (f *fakeSession) User() string { return f.user }
func (f *fakeSession) Stderr() io.ReadWriter { return &f.stderr }

func (f *fakeSession) Exit(code int) error {
	f.exit = code
	return nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

func TestSessionLimit(t *testing.T) {
	srv := &SSHServer{
		config: SSHServerConfig{MaxSessions: 1},
		logger: log.New(io.Discard),
	}

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	handler := srv.limitMiddleware(func(ssh.Session) {
		entered <- struct{}{}
		<-release
	})

	go func() {
		handler(&fakeSession{user: "first"})
		close(done)
	}()
	<-entered
	if srv.Active() != 1 {
		t.Fatalf("Active() = %d with one session, expected 1", srv.Active())
	}

	second := &fakeSession{user: "second"}
	handler(second)
	if second.exit != 1 || !second.closed {
		t.Errorf("second session exit=%d closed=%v, expected a rejection", second.exit, second.closed)
	}
	if !strings.Contains(second.stderr.String(), "full") {
		t.Errorf("rejection message = %q", second.stderr.String())
	}
	if srv.Active() != 1 {
		t.Errorf("Active() = %d after a rejection, expected 1", srv.Active())
	}

	close(release)
	<-done
	if srv.Active() != 0 {
		t.Errorf("Active() = %d after the session ended, expected 0", srv.Active())
	}

	admitted := false
	third := &fakeSession{user: "third"}
	srv.limitMiddleware(func(ssh.Session) { admitted = true })(third)
	if !admitted || third.exit != 0 || third.closed {
		t.Error("a session within the limit should be admitted")
	}
}

func TestSessionLimitZeroMeansUnlimited(t *testing.T) {
	srv := &SSHServer{logger: log.New(io.Discard)}
	calls := 0
	handler := srv.limitMiddleware(func(ssh.Session) { calls++ })
	for i := 0; i < 5; i++ {
		handler(&fakeSession{user: "u"})
	}
	if calls != 5 {
		t.Errorf("handler ran %d times, expected 5", calls)
	}
}
