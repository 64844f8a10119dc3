package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"calcom-assistant/internal/model"
	"calcom-assistant/pkg/llmprovider"
)

func TestMemoryStore_GetOrCreate(t *testing.T) {
	store := NewMemoryStore()

	a := store.GetOrCreate("s1")
	if a == nil || a.ID != "s1" {
		t.Fatalf("unexpected session: %+v", a)
	}

	b := store.GetOrCreate("s1")
	if a != b {
		t.Error("same id must return the same session")
	}

	if store.Len() != 1 {
		t.Errorf("expected 1 session, got %d", store.Len())
	}

	store.GetOrCreate("s2")
	if store.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", store.Len())
	}
}

func TestMemoryStore_Reset(t *testing.T) {
	store := NewMemoryStore()

	sess := store.GetOrCreate("s1")
	sess.Lock()
	sess.Messages = append(sess.Messages, llmprovider.Message{
		Role:  "user",
		Parts: []llmprovider.Part{{Text: "hello"}},
	})
	sess.Profile = model.Profile{Name: "Jordan", Email: "jordan@example.com"}
	sess.Unlock()

	store.Reset("s1")

	sess.Lock()
	defer sess.Unlock()
	if len(sess.Messages) != 0 {
		t.Errorf("history not cleared: %d messages", len(sess.Messages))
	}
	if sess.Profile != (model.Profile{}) {
		t.Errorf("profile not cleared: %+v", sess.Profile)
	}
}

func TestMemoryStore_ResetUnknownIsNoop(t *testing.T) {
	store := NewMemoryStore()
	store.Reset("never-seen")
	if store.Len() != 0 {
		t.Error("reset must not create sessions")
	}
}

func TestMemoryStore_ConcurrentGetOrCreate(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	sessions := make([]*Session, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = store.GetOrCreate("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(sessions); i++ {
		if sessions[i] != sessions[0] {
			t.Fatal("concurrent GetOrCreate returned distinct sessions")
		}
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 session, got %d", store.Len())
	}
}

func TestLRUStore_Capacity(t *testing.T) {
	store := NewLRUStore(2, 0)

	store.GetOrCreate("a")
	store.GetOrCreate("b")
	store.GetOrCreate("c") // evicts a

	if store.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", store.Len())
	}

	// "a" was evicted, so this is a fresh session.
	a := store.GetOrCreate("a")
	if len(a.Messages) != 0 {
		t.Error("evicted session must come back empty")
	}
}

func TestLRUStore_TTLExpiry(t *testing.T) {
	store := NewLRUStore(10, 20*time.Millisecond)

	sess := store.GetOrCreate("s1")
	sess.Lock()
	sess.Messages = append(sess.Messages, llmprovider.Message{Role: "user"})
	sess.Unlock()

	time.Sleep(50 * time.Millisecond)

	fresh := store.GetOrCreate("s1")
	if len(fresh.Messages) != 0 {
		t.Error("expired session must come back empty")
	}
}

func TestLRUStore_ResetUnknownIsNoop(t *testing.T) {
	store := NewLRUStore(4, 0)
	store.Reset("never-seen")
	if store.Len() != 0 {
		t.Error("reset must not create sessions")
	}
}

func TestStores_IndependentSessions(t *testing.T) {
	for name, store := range map[string]Store{
		"memory": NewMemoryStore(),
		"lru":    NewLRUStore(16, 0),
	} {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				sess := store.GetOrCreate(fmt.Sprintf("s%d", i))
				sess.Lock()
				sess.Messages = append(sess.Messages, llmprovider.Message{Role: "user"})
				sess.Unlock()
			}
			store.Reset("s0")
			if got := store.GetOrCreate("s1"); len(got.Messages) != 1 {
				t.Error("reset of one session must not touch others")
			}
		})
	}
}
