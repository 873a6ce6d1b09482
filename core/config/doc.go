// Package config provides configuration management for the preview server.
//
// It utilizes Viper for loading configuration from struct tag defaults, the
// selected profile, a .env file and environment variables.
//
// # Configuration Structure
//
//   - Server: bind host, candidate ports, profile name
//   - Site: root directory, fallback document, assets prefix, SPA fallback
//   - Headers: CORS and cache policy
//   - Banner: browser auto-launch
//   - Storage: bucket the build can be fetched from
//   - Log: logging level and format
//
// Environment keys are the upper-cased dotted keys with "_" separators,
// e.g. SITE_ROOT, SERVER_PORT, HEADERS_NO_CACHE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", "spa")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Candidates())
package config
