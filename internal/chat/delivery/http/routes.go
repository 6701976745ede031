package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the chat boundary under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.StartSession)
		sessions.GET("", h.Sessions)
		sessions.POST("/:session_id/messages", h.Submit)
		sessions.GET("/:session_id/history", h.History)
	}
}
