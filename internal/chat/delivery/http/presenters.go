package http

import (
	"fmt"

	"calcom-assistant/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() chat.SendInput {
	return chat.SendInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

func (h *handler) newChatResp(out chat.SendOutput) chatResp {
	return chatResp{
		Response:  out.Reply,
		SessionID: out.SessionID,
	}
}

type resetResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *handler) newResetResp(sessionID string) resetResp {
	return resetResp{
		Status:  "ok",
		Message: fmt.Sprintf("Session '%s' has been reset.", sessionID),
	}
}
