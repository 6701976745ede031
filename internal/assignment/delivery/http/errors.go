package http

import (
	"errors"
	"net/http"

	"homework-assistant/internal/assignment"
	pkgErrors "homework-assistant/pkg/errors"
)

// persistNotice is reported when a change is held in memory only.
const persistNotice = "change saved in memory but not written to disk yet; it will be retried with the next change"

// mapError translates assignment errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assignment.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "assignment not found")
	case errors.Is(err, assignment.ErrInvalidMutation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, assignment.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, assignment.ErrCalendarExport):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.Is(err, pkgErrors.ErrStoreIO):
		return pkgErrors.ErrServiceUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}

func notices(out assignment.MutationOutput) []string {
	if out.PersistErr == nil {
		return nil
	}
	return []string{persistNotice}
}
