package http

import (
	"net/http"

	"calcom-assistant/internal/chat"
	pkgErrors "calcom-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case chat.ErrEmptyMessage:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Message must not be empty.")
	default:
		// Turn failures (provider transport errors and the like) are
		// internal: the client sees a 500 with the error text, same as
		// the original surface.
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
