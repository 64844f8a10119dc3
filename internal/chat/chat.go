package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Send delivers one user message into its session's conversation
	// and returns the assistant's reply.
	Send(ctx context.Context, input SendInput) (SendOutput, error)

	// Reset clears a session's conversation history and profile.
	// Unknown session ids are a no-op.
	Reset(ctx context.Context, sessionID string) error
}
