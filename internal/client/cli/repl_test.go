package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/psptechhub/leadcap/internal/client/session"
	"github.com/stretchr/testify/assert"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

// fakeExec routes through a real Router so navigation commands change the
// active screen.
type fakeExec struct {
	state  *session.Store
	router *Router
	calls  []string
}

func newFakeExec() *fakeExec {
	state := session.NewStore()
	return &fakeExec{state: state, router: NewRouter(state)}
}

func (f *fakeExec) record(c string) { f.calls = append(f.calls, c) }

func (f *fakeExec) Route() Route { return f.router.Current() }
func (f *fakeExec) Render(w io.Writer) {}
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login")
	f.state.SetAuthenticated(true)
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error {
	f.record("signup")
	return nil
}
func (f *fakeExec) ResetPassword(ctx context.Context) error {
	f.record("reset")
	return nil
}
func (f *fakeExec) Navigate(to Route) error {
	f.record("nav:" + string(to))
	return f.router.Navigate(to)
}
func (f *fakeExec) Back() bool {
	f.record("back")
	return f.router.Back()
}
func (f *fakeExec) FillLead(ctx context.Context) error {
	f.record("fill")
	return nil
}
func (f *fakeExec) SubmitLead(ctx context.Context) error {
	f.record("submit")
	return nil
}
func (f *fakeExec) ShowLead() { f.record("show") }
func (f *fakeExec) ClearLead() { f.record("clear") }
func (f *fakeExec) Logout(ctx context.Context) {
	f.record("logout")
	f.state.SetAuthenticated(false)
}

func TestRunREPL_DispatchByRoute(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"forgot",
		"reset",
		"signup",
		"signup",
		"back",
		"back",
		"fill",
		"login",
		"fill",
		"submit",
		"show",
		"clear",
		"logout",
		"submit",
		"exit",
		"login",
	}, "\n")

	exec := newFakeExec()
	var out bytes.Buffer
	runREPL(context.Background(), exec, rdr(input), &out)

	assert.Equal(t, []string{
		"nav:forgot-password",
		"reset",
		"nav:signup",
		"signup",
		"back",
		"back",
		"login",
		"fill",
		"submit",
		"show",
		"clear",
		"logout",
	}, exec.calls)

	s := out.String()
	assert.Contains(t, s, "Available commands: login, signup, forgot, help, exit")
	assert.Contains(t, s, "Unknown command: fill")
	assert.Contains(t, s, "Unknown command: submit")
	assert.Contains(t, s, "leadcap (lead-capture)> ")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := newFakeExec()
	runREPL(context.Background(), exec, rdr("\n\n"), io.Discard)
	assert.Empty(t, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := newFakeExec()
	runREPL(ctx, exec, rdr("login\n"), io.Discard)
	assert.Empty(t, exec.calls)
}

// flipOnRead runs flip before the first read from r.
type flipOnRead struct {
	r    io.Reader
	flip func()
	done bool
}

func (f *flipOnRead) Read(p []byte) (int, error) {
	if !f.done {
		f.done = true
		f.flip()
	}
	return f.r.Read(p)
}

func TestRunREPL_RouteChangedWhileReading(t *testing.T) {
	exec := newFakeExec()
	in := &flipOnRead{
		r:    strings.NewReader("login\nfill\nexit\n"),
		flip: func() { exec.state.SetAuthenticated(true) },
	}

	var out bytes.Buffer
	runREPL(context.Background(), exec, bufio.NewReader(in), &out)

	assert.Equal(t, []string{"fill"}, exec.calls)
	assert.Contains(t, out.String(), `Screen changed to lead-capture, "login" was not run.`)
	assert.Contains(t, out.String(), "Bye!")
}
