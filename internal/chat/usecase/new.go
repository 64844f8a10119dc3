package usecase

import (
	"context"

	"calcom-assistant/internal/session"
	"calcom-assistant/pkg/log"
)

// TurnProcessor runs one conversational turn. Satisfied by
// orchestrator.Orchestrator; an interface here keeps the use case
// testable without a live LLM provider.
type TurnProcessor interface {
	ProcessTurn(ctx context.Context, sess *session.Session, userMessage string) (string, error)
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	store session.Store
	turns TurnProcessor
	l     log.Logger
}

// New creates a new chat UseCase implementation.
func New(store session.Store, turns TurnProcessor, l log.Logger) *implUseCase {
	return &implUseCase{
		store: store,
		turns: turns,
		l:     l,
	}
}
