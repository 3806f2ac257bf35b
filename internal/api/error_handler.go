package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/thevittavardhan/backend/internal/api/handler"
	"github.com/thevittavardhan/backend/internal/core/domain"
)

// NewHTTPErrorHandler maps every error escaping a handler onto the response
// envelope. Domain sentinels carry their public message; validation errors
// carry the per-field list; anything unexpected is logged and collapsed into
// a generic 500 so internals never leak.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			respond(c, http.StatusBadRequest, handler.Envelope{
				Success: false,
				Message: "Validation errors",
				Errors:  ve.Fields,
			})
			return
		}

		status, message := mapDomainError(err)
		if status == 0 {
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
				if s, ok := he.Message.(string); ok {
					message = s
				} else {
					message = http.StatusText(he.Code)
				}
				// Echo's router raises a bare 404 for unmatched paths.
				if status == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
					message = "Route not found"
				}
			} else {
				log.Error().Err(err).
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Msg("unhandled error")
				status = http.StatusInternalServerError
				message = "Something went wrong!"
			}
		}

		respond(c, status, handler.Envelope{Success: false, Message: message})
	}
}

func respond(c echo.Context, status int, body handler.Envelope) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrTokenExpired):
		return http.StatusForbidden, "Invalid token"
	case errors.Is(err, domain.ErrContactNotFound):
		return http.StatusNotFound, "Contact not found"
	case errors.Is(err, domain.ErrCareerNotFound):
		return http.StatusNotFound, "Career application not found"
	case errors.Is(err, domain.ErrEmptyStatus):
		return http.StatusBadRequest, "Status is required"
	}
	return 0, ""
}
