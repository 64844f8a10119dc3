package usecase

import (
	"context"
	"errors"
	"testing"

	"calcom-assistant/internal/chat"
	"calcom-assistant/internal/session"
)

// mockLogger
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockTurns struct {
	reply    string
	err      error
	lastSess *session.Session
	lastMsg  string
}

func (m *mockTurns) ProcessTurn(_ context.Context, sess *session.Session, msg string) (string, error) {
	m.lastSess = sess
	m.lastMsg = msg
	return m.reply, m.err
}

func TestSend_EmptyMessageRejected(t *testing.T) {
	uc := New(session.NewMemoryStore(), &mockTurns{}, &mockLogger{})

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := uc.Send(context.Background(), chat.SendInput{SessionID: "s1", Message: msg})
		if !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("message %q: expected ErrEmptyMessage, got %v", msg, err)
		}
	}
}

func TestSend_GeneratesSessionID(t *testing.T) {
	store := session.NewMemoryStore()
	turns := &mockTurns{reply: "hello"}
	uc := New(store, turns, &mockLogger{})

	out, err := uc.Send(context.Background(), chat.SendInput{Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SessionID == "" {
		t.Fatal("expected generated session id")
	}
	if out.Reply != "hello" {
		t.Errorf("got reply %q", out.Reply)
	}
	if turns.lastSess.ID != out.SessionID {
		t.Errorf("turn ran on session %q, returned %q", turns.lastSess.ID, out.SessionID)
	}

	// A second send with the returned id reuses the same session.
	if _, err := uc.Send(context.Background(), chat.SendInput{SessionID: out.SessionID, Message: "again"}); err != nil {
		t.Fatal(err)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 session, got %d", store.Len())
	}
}

func TestSend_TurnErrorPropagates(t *testing.T) {
	wantErr := errors.New("provider down")
	uc := New(session.NewMemoryStore(), &mockTurns{err: wantErr}, &mockLogger{})

	_, err := uc.Send(context.Background(), chat.SendInput{SessionID: "s1", Message: "hi"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected turn error, got %v", err)
	}
}

func TestReset_ClearsSession(t *testing.T) {
	store := session.NewMemoryStore()
	uc := New(store, &mockTurns{reply: "ok"}, &mockLogger{})

	if _, err := uc.Send(context.Background(), chat.SendInput{SessionID: "s1", Message: "hi"}); err != nil {
		t.Fatal(err)
	}

	if err := uc.Reset(context.Background(), "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.GetOrCreate("s1"); len(got.Messages) != 0 {
		t.Error("session not cleared")
	}

	// Unknown ids are a no-op, not an error.
	if err := uc.Reset(context.Background(), "never-seen"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
