package spa

import (
	"errors"

	"qa-preview/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the site over HTTP.
type Handler struct {
	resolver *Resolver
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(resolver *Resolver, logger *zap.Logger) *Handler {
	return &Handler{resolver: resolver, logger: logger}
}

// RegisterRoutes registers the catch-all route. Fiber answers HEAD on GET routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.HandleRequest)
}

// HandleRequest serves the resolved file for the request path.
func (h *Handler) HandleRequest(c *fiber.Ctx) error {
	// The router has already split off the query and decoded the path, so
	// "?" and "#" here are part of a file name.
	res, err := h.resolver.resolve(c.Path())
	if err != nil {
		switch {
		case errors.Is(err, ErrPathTraversal):
			logger.WithRayID(h.logger, c).Debug("Rejected request path", zap.String("path", c.Path()))
			return fiber.ErrForbidden
		case errors.Is(err, ErrNotFound):
			return fiber.ErrNotFound
		default:
			return err
		}
	}

	if res.Fallback {
		logger.WithRayID(h.logger, c).Debug("Serving fallback document", zap.String("path", c.Path()))
	}

	return c.SendFile(res.Path)
}
