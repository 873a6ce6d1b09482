package headers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"qa-preview/core/middleware/headers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg headers.Config) *fiber.App {
	app := fiber.New()
	app.Use(headers.New(cfg))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	return app
}

func do(t *testing.T, app *fiber.App, method, target string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	return resp
}

func TestNew_CORS(t *testing.T) {
	app := newApp(headers.Config{CORS: true})

	for _, target := range []string{"/ok", "/missing"} {
		t.Run(target, func(t *testing.T) {
			resp := do(t, app, http.MethodGet, target)
			assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Headers"))
			assert.Empty(t, resp.Header.Get("Cache-Control"))
		})
	}

	t.Run("Preflight", func(t *testing.T) {
		resp := do(t, app, http.MethodOptions, "/anything")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestNew_NoCache(t *testing.T) {
	app := newApp(headers.Config{NoCache: true, CacheControl: "no-store"})

	for _, target := range []string{"/ok", "/missing"} {
		t.Run(target, func(t *testing.T) {
			resp := do(t, app, http.MethodGet, target)
			assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"))
			assert.Equal(t, "no-cache", resp.Header.Get("Pragma"))
			assert.Equal(t, "0", resp.Header.Get("Expires"))
			assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNew_CacheControl(t *testing.T) {
	app := newApp(headers.Config{CacheControl: "no-store"})

	resp := do(t, app, http.MethodGet, "/ok")
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.Empty(t, resp.Header.Get("Pragma"))
}

func TestNew_Disabled(t *testing.T) {
	app := newApp(headers.Config{})

	resp := do(t, app, http.MethodGet, "/ok")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Cache-Control"))

	resp = do(t, app, http.MethodOptions, "/ok")
	assert.NotEqual(t, http.StatusNoContent, resp.StatusCode)
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, headers.Config{}.Enabled())
	assert.True(t, headers.Config{CORS: true}.Enabled())
	assert.True(t, headers.Config{NoCache: true}.Enabled())
	assert.True(t, headers.Config{CacheControl: "no-store"}.Enabled())
}
