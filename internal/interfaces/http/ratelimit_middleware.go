package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/pkg/config"
)

// localhostExempt IPs libres del rate limit (pruebas locales y health checks).
var localhostExempt = map[string]bool{
	"127.0.0.1": true,
	"::1":       true,
}

// RateLimiter construye un limiter por IP con techo de peticiones por
// minuto. Devuelve un pass-through cuando el límite está deshabilitado.
func RateLimiter(cfg config.RateLimitConfig, perMin int) fiber.Handler {
	if !cfg.Enabled || perMin <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        perMin,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return localhostExempt[c.IP()]
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Error: "Rate limit exceeded"})
		},
	})
}
