package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assignmentHTTP "homework-assistant/internal/assignment/delivery/http"
	chatHTTP "homework-assistant/internal/chat/delivery/http"
)

// setupAssignmentDomain registers /api/v1/assignments.
func (srv HTTPServer) setupAssignmentDomain(ctx context.Context, api *gin.RouterGroup) {
	h := assignmentHTTP.New(srv.l, srv.assignments, assignmentHTTP.Config{
		HorizonDays: srv.horizonDays,
		Location:    srv.location,
	})
	assignmentHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Assignment domain registered")
}

// setupChatDomain registers /api/v1/chat/sessions.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) {
	h := chatHTTP.New(srv.l, srv.chat)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h)

	srv.l.Infof(ctx, "Chat domain registered")
}
