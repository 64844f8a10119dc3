package httpserver

import (
	"context"

	chatHTTP "calcom-assistant/internal/chat/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupChatDomain registers the chat domain routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase (in cmd/api, injected via Config)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := chatHTTP.New(srv.l, srv.chatUC)

	// Registers /api/v1/chat and /api/v1/chat/sessions/:session_id
	chatHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
