// Package headers applies the static CORS and cache header policy.
package headers

import (
	"github.com/gofiber/fiber/v2"
)

const (
	allowMethods = "GET, POST, OPTIONS"
	noCache      = "no-cache, no-store, must-revalidate"
)

// New creates the header policy middleware.
//
// Headers are set before the handler runs so error responses rendered by
// the Fiber error handler keep them, and again afterwards because a 304
// from the file handler resets the response.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apply(c, cfg)

		if cfg.CORS && c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}

		err := c.Next()
		apply(c, cfg)
		return err
	}
}

func apply(c *fiber.Ctx, cfg Config) {
	if cfg.CORS {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, "*")
	}

	switch {
	case cfg.NoCache:
		c.Set(fiber.HeaderCacheControl, noCache)
		c.Set(fiber.HeaderPragma, "no-cache")
		c.Set(fiber.HeaderExpires, "0")
	case cfg.CacheControl != "":
		c.Set(fiber.HeaderCacheControl, cfg.CacheControl)
	}
}
