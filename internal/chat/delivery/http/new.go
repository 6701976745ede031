package http

import (
	"github.com/gin-gonic/gin"

	"homework-assistant/internal/chat"
	"homework-assistant/pkg/log"
)

// Handler is the chat HTTP delivery layer.
type Handler interface {
	StartSession(c *gin.Context)
	Sessions(c *gin.Context)
	Submit(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the chat boundary.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
