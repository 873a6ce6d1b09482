package app_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"qa-preview/core/app"
	"qa-preview/core/loader"
	"qa-preview/core/middleware/headers"
	"qa-preview/core/middleware/rayid"
	"qa-preview/feature/spa"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setup(t *testing.T, hdr headers.Config) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		"index.html":    "<!doctype html><div id=root></div>",
		"assets/app.js": "render()",
	}
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}

	resolver, err := spa.NewResolver(spa.Config{
		Root:             root,
		FallbackDocument: "index.html",
		AssetsPrefix:     "/assets/",
		Fallback:         true,
	})
	require.NoError(t, err)
	require.NoError(t, resolver.Validate())

	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	mgr := loader.NewManager(l)
	mgr.Register(spa.NewFeature(resolver, l))

	a, err := app.New(app.Options{Headers: hdr, Logger: l}, mgr)
	require.NoError(t, err)
	return a, logs
}

func request(t *testing.T, a *fiber.App, method, target string) (*http.Response, string) {
	t.Helper()

	resp, err := a.Test(httptest.NewRequest(method, target, nil), 2000)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestApp_Scenario(t *testing.T) {
	a, logs := setup(t, headers.Config{CORS: true, NoCache: true})

	t.Run("Asset", func(t *testing.T) {
		resp, body := request(t, a, http.MethodGet, "/assets/app.js")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "render()", body)
		assert.Contains(t, resp.Header.Get("Content-Type"), "javascript")
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"))
		assert.NotEmpty(t, resp.Header.Get(rayid.Header))
	})

	t.Run("ClientRoute", func(t *testing.T) {
		resp, body := request(t, a, http.MethodGet, "/dashboard/settings")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "<!doctype html><div id=root></div>", body)
		assert.Equal(t, "0", resp.Header.Get("Expires"))
	})

	t.Run("MissingAsset", func(t *testing.T) {
		resp, _ := request(t, a, http.MethodGet, "/assets/missing.js")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "no-cache", resp.Header.Get("Pragma"))
	})

	t.Run("Preflight", func(t *testing.T) {
		resp, _ := request(t, a, http.MethodOptions, "/dashboard")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	})

	t.Run("Traversal", func(t *testing.T) {
		resp, _ := request(t, a, http.MethodGet, "/../../etc/passwd")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("OnlyErrorsAreLogged", func(t *testing.T) {
		failed := logs.FilterMessage("Request failed").All()
		require.Len(t, failed, 2)

		assert.Equal(t, "/assets/missing.js", failed[0].ContextMap()["path"])
		assert.EqualValues(t, 404, failed[0].ContextMap()["status"])
		assert.NotEmpty(t, failed[0].ContextMap()["ray_id"])

		assert.EqualValues(t, 403, failed[1].ContextMap()["status"])
		assert.Equal(t, "/../../etc/passwd", failed[1].ContextMap()["path"])
		assert.Equal(t, http.MethodGet, failed[1].ContextMap()["method"])

		assert.Len(t, logs.FilterLevelExact(zapcore.WarnLevel).All(), 2, "each failure is warned once")
	})
}

func TestApp_NoHeaderPolicy(t *testing.T) {
	a, _ := setup(t, headers.Config{})

	resp, _ := request(t, a, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Cache-Control"))
}
