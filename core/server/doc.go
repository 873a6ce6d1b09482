// Package server holds the HTTP server configuration and the port probe.
//
// The preview server does not own a fixed port. It is given a starting port
// and an attempt budget (or an explicit list of ports) and takes the first
// one that binds.
//
// # Configuration
//
// The Config struct defines the bind host, the first candidate port, the
// attempt budget, an optional explicit port list and the profile name.
//
// # Port probing
//
//   - FindAvailablePort: bind-then-release scan, returns a port number.
//   - Listen: bind-and-keep scan, returns the open listener. The start
//     command uses this one so the port cannot be taken between probe and
//     serve.
//
// Both return ErrNoAvailablePort once every candidate has failed.
package server
