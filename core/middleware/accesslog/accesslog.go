// Package accesslog records failed requests only.
//
// The preview server is watched by one tester at a time, so successful
// requests are noise. Only the statuses in Statuses are logged.
package accesslog

import (
	"errors"
	"time"

	"qa-preview/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Statuses lists the response codes that are logged.
var Statuses = map[int]bool{
	fiber.StatusForbidden:           true,
	fiber.StatusNotFound:            true,
	fiber.StatusInternalServerError: true,
}

// New creates the filtered request logging middleware.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := statusOf(c, err)
		if !Statuses[status] {
			return err
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.String("ip", c.IP()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil && status >= fiber.StatusInternalServerError {
			fields = append(fields, zap.Error(err))
		}

		rl := logger.WithRayID(l, c)
		if status >= fiber.StatusInternalServerError {
			rl.Error("Request failed", fields...)
		} else {
			rl.Warn("Request failed", fields...)
		}
		return err
	}
}

// statusOf predicts the status the error handler will write for err.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
