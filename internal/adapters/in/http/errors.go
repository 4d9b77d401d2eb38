package http

import (
	"errors"
	"net/http"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps application errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, wizard.ErrSubmitOutsidePickup),
		errors.Is(err, wizard.ErrSubmitRequired):
		return http.StatusConflict
	case errors.Is(err, kernel.ErrUUIDIsNotConstructed),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors get a fixed message and
// are logged instead of echoed.
func (s *Server) fail(c echo.Context, err error, internalMessage string) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		if internalMessage == "" {
			internalMessage = http.StatusText(status)
		}
		s.logger.ErrorContext(c.Request().Context(), internalMessage, "error", err)
		return c.JSON(status, Error{Code: status, Message: internalMessage})
	}

	return c.JSON(status, Error{Code: status, Message: err.Error()})
}
