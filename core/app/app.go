// Package app assembles the Fiber application: middleware in a fixed order
// followed by the registered features.
package app

import (
	"qa-preview/core/loader"
	"qa-preview/core/middleware/accesslog"
	"qa-preview/core/middleware/headers"
	"qa-preview/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Options configures the application.
type Options struct {
	Headers headers.Config
	Logger  *zap.Logger
}

// New builds the application and loads every enabled feature of mgr.
func New(opts Options, mgr *loader.Manager) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // the banner replaces it
		UnescapePath:          true,
		// Log fields outlive the handler; fasthttp reuses the request buffers.
		Immutable: true,
	})

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())
	// 2. Error-only access log
	app.Use(accesslog.New(opts.Logger))
	// 3. Header policy, also answers CORS preflight
	app.Use(headers.New(opts.Headers))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}
