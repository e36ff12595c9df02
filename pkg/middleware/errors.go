package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"potager/pkg/apperr"
	"potager/pkg/logger"
)

// ErrorHandler renders every error as {"error": message}.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		msg := http.StatusText(status)

		var he *echo.HTTPError
		switch ae := apperr.From(err); {
		case ae != nil:
			status = ae.Status()
			if status == http.StatusInternalServerError {
				log.WithError(err).Error("internal error")
			} else {
				msg = ae.Message
			}
		case errors.As(err, &he):
			status = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
		default:
			log.WithError(err).Error("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, map[string]string{"error": msg})
		}
		if err != nil {
			log.WithError(err).Warn("write error response")
		}
	}
}
