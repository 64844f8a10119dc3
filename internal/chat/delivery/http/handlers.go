package http

import (
	"github.com/gin-gonic/gin"

	"calcom-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Sends one user message to the assistant and returns its reply. Pass the returned session_id on subsequent requests to continue the conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request - empty message"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// ResetSession godoc
// @Summary     Reset a session
// @Description Clears the conversation history and cached user info for the given session. Unknown sessions are a no-op.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} resetResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{session_id} [DELETE]
func (h *handler) ResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("session_id")

	if err := h.uc.Reset(ctx, sessionID); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newResetResp(sessionID))
}
