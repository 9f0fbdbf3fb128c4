package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Me(ctx context.Context) error    { f.calls = append(f.calls, "me"); return nil }
func (f *fakeExec) Users(ctx context.Context) error { f.calls = append(f.calls, "users"); return nil }
func (f *fakeExec) Send(ctx context.Context) error  { f.calls = append(f.calls, "send"); return nil }
func (f *fakeExec) Inbox(ctx context.Context) error { f.calls = append(f.calls, "inbox"); return nil }
func (f *fakeExec) Outbox(ctx context.Context) error {
	f.calls = append(f.calls, "outbox")
	return nil
}
func (f *fakeExec) Show(ctx context.Context) error { f.calls = append(f.calls, "show"); return nil }
func (f *fakeExec) Read(ctx context.Context) error { f.calls = append(f.calls, "read"); return nil }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"send",
		"inbox",
		"outbox",
		"show",
		"read",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "send", "inbox", "outbox", "show", "read"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ShortForms(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("u\ni\no\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	want := []string{"users", "inbox", "outbox"}
	if len(exec.calls) != len(want) {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("unexpected calls: %v", exec.calls)
		}
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("bogus\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
