package middleware

import (
	"time"

	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request. Errors from the chain are
// rendered here through the app's ErrorHandler so the logged status is final.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if rid, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
			fields = append(fields, zap.String("request_id", rid))
		}

		log := logger.Get()
		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error("Request failed", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warn("Request rejected", fields...)
		default:
			log.Info("Request handled", fields...)
		}
		return nil
	}
}
