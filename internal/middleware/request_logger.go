package middleware

import (
	"errors"
	"time"

	"dcn-community/internal/logger"
	"dcn-community/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// RequestLogger logs every request and records its latency. It expects the
// requestid middleware to run first.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			// The error handler has not written the response yet.
			var fe *fiber.Error
			if errors.As(chainErr, &fe) {
				status = fe.Code
			} else {
				status = statusForError(chainErr)
			}
		}
		elapsed := time.Since(start)

		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		metrics.ObserveHTTP(c.Method(), route, status, elapsed)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
			zap.String("ip", c.IP()),
			zap.String("userAgent", c.Get(fiber.HeaderUserAgent)),
		}
		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
			fields = append(fields, zap.String("requestID", id))
		}
		if status >= fiber.StatusInternalServerError {
			logger.Get().Error("HTTP request", fields...)
		} else {
			logger.Get().Info("HTTP request", fields...)
		}
		return chainErr
	}
}
