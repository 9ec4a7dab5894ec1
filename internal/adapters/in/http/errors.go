package http

import (
	"errors"
	"net/http"

	"commandes/internal/core/application/usecases/commands"
	"commandes/internal/core/domain/model/order"
	"commandes/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non 2xx response.
type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Allowed []string `json:"allowed,omitempty"`
}

func writeError(c echo.Context, code int, message string) error {
	return c.JSON(code, Error{Code: code, Message: message})
}

// statusCode maps application errors to HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, commands.ErrItemNotSoldByVendor),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeAppError writes err with its mapped status. Server errors are logged
// and answered with a generic message.
func (s *Server) writeAppError(c echo.Context, err error) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "route", c.Path(), "error", err)
		return writeError(c, code, "internal error")
	}
	return writeError(c, code, err.Error())
}

// writeStatusChangeError answers a rejected status change with the targets
// the caller's mode accepts.
func (s *Server) writeStatusChangeError(c echo.Context, mode order.TransitionMode, err error) error {
	if !errors.Is(err, order.ErrInvalidStatus) {
		return s.writeAppError(c, err)
	}

	targets := mode.AllowedTargets()
	allowed := make([]string, len(targets))
	for i, target := range targets {
		allowed[i] = target.String()
	}
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
		Allowed: allowed,
	})
}
