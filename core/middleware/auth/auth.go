package auth

import (
	"crypto/subtle"

	"content-state/core/api"

	"github.com/gofiber/fiber/v2"
)

// Header is the header carrying the service API key.
const Header = "X-API-Key"

// Config holds the API key middleware settings.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
}

// New returns a middleware that rejects requests without the configured API key.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		key := c.Get(Header)
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
			return api.Send(c, fiber.StatusUnauthorized, api.Failed("", api.CodeUnauthorized, "Invalid or missing API key"))
		}
		return c.Next()
	}
}
