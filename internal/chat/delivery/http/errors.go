package http

import (
	"errors"
	"net/http"

	"homework-assistant/internal/chat"
	"homework-assistant/internal/conversation"
	pkgErrors "homework-assistant/pkg/errors"
)

// mapError translates chat and conversation errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message text is required")
	case errors.Is(err, chat.ErrEmptySessionID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
	case errors.Is(err, conversation.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
