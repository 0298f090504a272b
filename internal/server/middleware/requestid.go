package middleware

import (
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/open-dossier/archive/backend/pkg/logger"
)

const requestIDLength = 12

// RequestIDMiddleware tags every request with a short nanoid, echoed back
// in the X-Request-ID header and attached to the request log line.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := gonanoid.New(requestIDLength)
			if err != nil {
				// nanoid only fails when the OS entropy source does;
				// the request can still proceed untagged.
				logger.Warn("Failed to generate request id", "err", err)
				return next(c)
			}
			c.Response().Header().Set("X-Request-ID", id)
			logger.Debug("Request", "id", id, "method", c.Request().Method, "path", c.Request().URL.Path)
			return next(c)
		}
	}
}
