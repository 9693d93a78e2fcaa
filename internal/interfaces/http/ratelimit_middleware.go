package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/pkg/ratelimit"
)

// RateLimitMiddleware limita peticiones por IP dentro del grupo dado. Con
// limiter nil es transparente (útil en tests).
func RateLimitMiddleware(limiter *ratelimit.Limiter, group string, max int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}
		key := group + ":" + c.IP()
		if !limiter.Allow(key, max) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Error: "demasiadas peticiones, intente más tarde"})
		}
		return c.Next()
	}
}
