package middleware

import (
	"net/http"

	"capitalRuns/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler: anything a handler did not map
// itself comes out as a JSON message with the underlying text.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("request failed", err, "path", c.Request().URL.Path)
	}

	if err := c.JSON(code, map[string]interface{}{"message": message}); err != nil {
		logger.Error("failed to write error response", err)
	}
}
