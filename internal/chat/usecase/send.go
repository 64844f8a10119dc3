package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"calcom-assistant/internal/chat"
)

// Send runs one turn of the conversation identified by the session id.
// An empty session id starts a fresh session under a generated UUID so
// the caller can keep the conversation going with the returned id.
func (uc *implUseCase) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
		uc.l.Infof(ctx, "uc.Send: new session %s", sessionID)
	}

	sess := uc.store.GetOrCreate(sessionID)

	reply, err := uc.turns.ProcessTurn(ctx, sess, input.Message)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Send ProcessTurn: %v", err)
		return chat.SendOutput{}, err
	}

	return chat.SendOutput{
		SessionID: sessionID,
		Reply:     reply,
	}, nil
}

// Reset clears the conversation for the given session id.
func (uc *implUseCase) Reset(ctx context.Context, sessionID string) error {
	uc.store.Reset(sessionID)
	uc.l.Infof(ctx, "uc.Reset: session %s cleared", sessionID)
	return nil
}
