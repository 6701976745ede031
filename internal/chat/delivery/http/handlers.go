package http

import (
	"github.com/gin-gonic/gin"

	"homework-assistant/pkg/response"
)

// StartSession godoc
// @Summary     Start a chat session
// @Tags        Chat
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.StartSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	var notices []string
	if out.PersistErr != nil {
		notices = append(notices, out.PersistErr.Error())
	}
	response.OKWithNotices(c, newSessionResp(out.Session), notices)
}

// Sessions godoc
// @Summary     List chat sessions
// @Tags        Chat
// @Produce     json
// @Success     200 {object} sessionsResp
// @Router      /api/v1/chat/sessions [GET]
func (h *handler) Sessions(c *gin.Context) {
	response.OK(c, newSessionsResp(h.uc.Sessions(c.Request.Context())))
}

// Submit godoc
// @Summary     Send a message
// @Description Runs one dialogue turn and returns the assistant's reply. Persistence problems are reported in errors without failing the request.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       session_id path string    true "Session ID"
// @Param       body       body submitReq true "Message"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/sessions/{session_id}/messages [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OKWithNotices(c, newSubmitResp(out), out.Notices)
}

// History godoc
// @Summary     Get chat history
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{session_id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("session_id")

	turns, err := h.uc.GetHistory(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetHistory: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newHistoryResp(id, turns))
}
