package http

import (
	"github.com/gin-gonic/gin"
)

// processSubmitReq binds the message body and the session URI param.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("session_id")
	return req, req.validate()
}
