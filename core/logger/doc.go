// Package logger provides a structured logging facility based on Zap.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID set by the rayid middleware from a
// Fiber context and attaches it to the log entry, so the access log line and
// any handler warning for the same request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console (default, since the preview server is read by a human)
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Rejected request path", zap.String("path", c.Path()))
package logger
