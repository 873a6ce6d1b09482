package accesslog_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"qa-preview/core/logger"
	"qa-preview/core/middleware/accesslog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(logger.RayIDKey, "ray-1")
		return c.Next()
	})
	app.Use(accesslog.New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/redirect", func(c *fiber.Ctx) error { return c.Redirect("/ok") })
	app.Get("/bad", func(c *fiber.Ctx) error { return fiber.ErrBadRequest })
	app.Get("/forbidden", func(c *fiber.Ctx) error { return fiber.ErrForbidden })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	app.Get("/status404", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	tests := []struct {
		path   string
		status int
		logged bool
		level  zapcore.Level
	}{
		{"/ok", 200, false, 0},
		{"/redirect", 302, false, 0},
		{"/bad", 400, false, 0},
		{"/forbidden", 403, true, zapcore.WarnLevel},
		{"/missing", 404, true, zapcore.WarnLevel},
		{"/status404", 404, true, zapcore.WarnLevel},
		{"/boom", 500, true, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			before := logs.Len()

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if !tt.logged {
				assert.Equal(t, before, logs.Len())
				return
			}

			require.Equal(t, before+1, logs.Len())
			entry := logs.All()[before]
			assert.Equal(t, tt.level, entry.Level)

			fields := entry.ContextMap()
			assert.Equal(t, tt.path, fields["path"])
			assert.EqualValues(t, tt.status, fields["status"])
			assert.Equal(t, "GET", fields["method"])
			assert.Equal(t, "ray-1", fields["ray_id"])
		})
	}
}
