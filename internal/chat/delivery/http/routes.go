package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	ch := rg.Group("/chat")
	{
		ch.POST("", h.Chat)
		ch.DELETE("/sessions/:session_id", h.ResetSession)
	}
}
