package middleware

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/scholarship/api/http/presenter"
)

// Limiter decides whether another request for key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// RateLimit rejects requests with 429 once the client IP exceeds its quota.
// A nil limiter disables the check.
func RateLimit(l Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l == nil || l.Allow(c.UserContext(), c.IP()) {
			return c.Next()
		}
		return c.Status(http.StatusTooManyRequests).JSON(presenter.ErrorResponse{Message: "too many requests"})
	}
}
