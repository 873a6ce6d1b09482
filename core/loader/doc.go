// Package loader provides the feature registry used by the start command.
//
// Each feature implements the Feature interface and registers its own
// routes on the Fiber router.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager keeps features in registration order. LoadAll skips disabled
// features and stops at the first Load error. Order matters: the static site
// feature registers a catch-all route, so it must be registered last.
package loader
