package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HTTPErrorHandler renders every error that reaches Echo as
// {"error": message}.  Framework errors (unknown route, malformed body)
// keep their status; anything else is logged and reported as a 500
// without detail.
func HTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		msg := http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok && m != "" {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
		}
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err))
			msg = "internal server error"
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, echo.Map{"error": msg})
		}
		if werr != nil {
			log.Warn("write error response", zap.Error(werr))
		}
	}
}
