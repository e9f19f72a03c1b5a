package notification

import (
	"errors"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestSend(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if err := Send("labsync", "hello"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(mock.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.calls))
	}
	if mock.calls[0].message != "hello" {
		t.Errorf("message = %q, want %q", mock.calls[0].message, "hello")
	}
}

func TestSend_Error(t *testing.T) {
	mock := &mockNotification{err: errors.New("notification system unavailable")}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if err := Send("labsync", "hello"); err == nil {
		t.Error("expected error from failing notifier")
	}
}

func TestCommitCompleted(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if err := CommitCompleted("stroop", 3); err != nil {
		t.Fatalf("CommitCompleted failed: %v", err)
	}
	if len(mock.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.calls))
	}
	call := mock.calls[0]
	if call.title != "labsync" {
		t.Errorf("title = %q, want %q", call.title, "labsync")
	}
	if call.message != "stroop: committed 3 file(s)" {
		t.Errorf("message = %q, want %q", call.message, "stroop: committed 3 file(s)")
	}
}

func TestLoggedIn(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if err := LoggedIn("alice"); err != nil {
		t.Fatalf("LoggedIn failed: %v", err)
	}
	if mock.calls[0].message != "Logged in as alice" {
		t.Errorf("message = %q, want %q", mock.calls[0].message, "Logged in as alice")
	}
}
