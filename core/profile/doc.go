// Package profile holds the catalog of server presets.
//
// Each profile reproduces one of the ad-hoc preview scripts the QA team used
// to run: which directory to serve, which ports to try, whether to fall back
// to index.html for client routes, which headers to send and what to print
// in the console banner.
//
// Profile defaults sit between the struct tag defaults and the environment,
// so SERVER_PORT=9000 still wins over the preset port.
package profile
