// Package session holds per-conversation state: ordered message history
// and the user profile learned along the way. Stores are injected into
// the chat use case so the backing policy (unbounded vs LRU) is a
// deployment choice, not a code change.
package session

import (
	"sync"

	"calcom-assistant/internal/model"
	"calcom-assistant/pkg/llmprovider"
)

// Session is one conversation. The embedded mutex serializes turns so
// two concurrent requests on the same session cannot interleave their
// history appends.
type Session struct {
	sync.Mutex

	ID       string
	Messages []llmprovider.Message
	Profile  model.Profile
}

// Clear drops the history and profile. Caller must hold the lock.
func (s *Session) Clear() {
	s.Messages = nil
	s.Profile = model.Profile{}
}

// Store looks up and resets sessions by id.
type Store interface {
	// GetOrCreate returns the session for id, creating it if absent.
	GetOrCreate(id string) *Session

	// Reset clears the session's history and profile. Unknown ids
	// are a no-op.
	Reset(id string)

	// Len returns the number of live sessions.
	Len() int
}
