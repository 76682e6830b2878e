package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	failed bool
	err    error

	calls []string
}

func (f *fakeExec) loadFailed() bool { return f.failed }
func (f *fakeExec) List(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return f.err
}
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.calls = append(f.calls, "show "+id)
	return f.err
}
func (f *fakeExec) Add(ctx context.Context) error {
	f.calls = append(f.calls, "add")
	return f.err
}
func (f *fakeExec) Edit(ctx context.Context, id string) error {
	f.calls = append(f.calls, "edit "+id)
	return f.err
}
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete "+id)
	return f.err
}
func (f *fakeExec) Retry(ctx context.Context) error {
	f.calls = append(f.calls, "retry")
	f.failed = false
	return f.err
}

func runScript(t *testing.T, exec *fakeExec, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	r := NewLineReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, r, &out)
	return out.String()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(t, exec,
		"help",
		"list",
		"l",
		"show 3",
		"add",
		"edit 3",
		"delete 4",
		"",
		"foobar",
		"exit",
		"list",
	)

	assert.Equal(t, []string{"list", "list", "show 3", "add", "edit 3", "delete 4"}, exec.calls)
	assert.Contains(t, out, "pk (status)> ")
	assert.Contains(t, out, "Available commands: (l)ist")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_UsageWithoutID(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(t, exec, "show", "edit", "delete")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Usage: show <id>")
	assert.Contains(t, out, "Usage: edit <id>")
	assert.Contains(t, out, "Usage: delete <id>")
}

func TestRunREPL_PrintsHandlerErrors(t *testing.T) {
	exec := &fakeExec{err: errors.New("boom")}
	out := runScript(t, exec, "list", "exit")

	assert.Equal(t, []string{"list"}, exec.calls)
	assert.Contains(t, out, "Error: boom")
}

func TestRunREPL_LoadFailedGatesCommands(t *testing.T) {
	exec := &fakeExec{failed: true}
	out := runScript(t, exec, "help", "list", "add", "retry", "list", "exit")

	assert.Equal(t, []string{"retry", "list"}, exec.calls)
	assert.Contains(t, out, "Available commands: retry, help, exit")
	assert.Equal(t, 2, strings.Count(out, "Patients could not be loaded."))
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(t, exec, "list")

	assert.Equal(t, []string{"list"}, exec.calls)
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.NotContains(t, out, "Bye!")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	exec := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "status" }, NewLineReader(strings.NewReader("list\n")), &out)

	assert.Empty(t, exec.calls)
	assert.Empty(t, out.String())
}

func TestRunREPL_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	exec := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())

	out := &syncWriter{w: &bytes.Buffer{}}
	done := make(chan struct{})
	go func() {
		runREPL(ctx, exec, func() string { return "status" }, NewLineReader(pr), out)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runREPL kept waiting for input after cancel")
	}
	assert.Empty(t, exec.calls)
}

func TestConfirm_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	assert.False(t, Confirm(ctx, NewLineReader(pr), "Sure?", &out))
}
