package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"shoecard/logger"
)

// RequestLogger logs method, path, status and latency of every request.
func RequestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		level := logger.INFO
		if status >= fiber.StatusInternalServerError {
			level = logger.ERROR
		}
		l.Log(level, "request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}
