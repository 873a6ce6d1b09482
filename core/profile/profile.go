package profile

import (
	"errors"
	"fmt"
	"sort"
)

// Default is the profile used when none is configured.
const Default = "spa"

// ErrUnknownProfile is returned by Lookup for names missing from the catalog.
var ErrUnknownProfile = errors.New("unknown profile")

// Credential is a test account printed in the banner.
type Credential struct {
	Role     string
	Email    string
	Password string
}

// Profile is a named preset of configuration defaults and banner content.
type Profile struct {
	Name        string
	Description string
	// Defaults maps configuration keys (e.g. "server.port") to values.
	// They override struct defaults and are overridden by .env and the environment.
	Defaults    map[string]any
	Title       string
	Credentials []Credential
	Steps       []string
	Notes       []string
}

var qaAccounts = []Credential{
	{Role: "Admin", Email: "admin@campbellco.com", Password: "password123"},
	{Role: "Sales", Email: "john.smith@campbellco.com", Password: "password123"},
}

var catalog = map[string]Profile{
	"spa": {
		Name:        "spa",
		Description: "Production build with client-side routing, CORS and caching disabled",
		Defaults: map[string]any{
			"site.root":           "dist",
			"site.spa_fallback":   true,
			"site.assets_prefix":  "/assets/",
			"server.port":         3000,
			"server.max_attempts": 10,
			"headers.cors":        true,
			"headers.no_cache":    true,
			"banner.open_browser": true,
		},
		Title:       "W.O.L.F. Den Test Server",
		Credentials: qaAccounts,
		Steps: []string{
			"Login screen with hero image",
			"Hunt Planner - lead research and persona selection",
			"Call Sequence - multi-call planning with CSV import",
			"Call Guide - content library (6 categories)",
			"Live Call - two-column real-time assistance",
			"Call Results - analytics with charts",
		},
		Notes: []string{"Try both admin and sales accounts to see different features"},
	},
	"test": {
		Name:        "test",
		Description: "CORS-enabled server scanning a fixed list of ports",
		Defaults: map[string]any{
			"site.root":           "dist",
			"site.spa_fallback":   false,
			"server.ports":        []int{3000, 3001, 8000, 8080, 8081},
			"headers.cors":        true,
			"banner.open_browser": true,
		},
		Title:       "W.O.L.F. Den Test Server",
		Credentials: qaAccounts,
		Notes:       []string{"If the browser doesn't open automatically, copy the URL above"},
	},
	"dist": {
		Name:        "dist",
		Description: "Production build on port 8080 with Cache-Control: no-store",
		Defaults: map[string]any{
			"site.root":             "dist",
			"site.spa_fallback":     false,
			"server.port":           8080,
			"server.max_attempts":   1,
			"headers.cache_control": "no-store",
		},
		Title: "W.O.L.F. Den Production Build Server",
		Notes: []string{
			"Call timer with persona-specific timing",
			"Fireworks celebrations",
			"Talking points selection",
			"Live industry intelligence",
			"Gamification system",
		},
	},
	"alt": {
		Name:        "alt",
		Description: "Plain backup server on port 8081",
		Defaults: map[string]any{
			"site.root":           "dist",
			"site.spa_fallback":   false,
			"server.port":         8081,
			"server.max_attempts": 1,
		},
		Title: "W.O.L.F. Den Backup Server",
	},
	"simple": {
		Name:        "simple",
		Description: "Plain server on port 8888 with login hints",
		Defaults: map[string]any{
			"site.root":           "dist",
			"site.spa_fallback":   false,
			"server.port":         8888,
			"server.max_attempts": 1,
		},
		Title:       "W.O.L.F. Den",
		Credentials: qaAccounts,
	},
	"demo": {
		Name:        "demo",
		Description: "Standalone demo page served from the working directory",
		Defaults: map[string]any{
			"site.root":              ".",
			"site.fallback_document": "test-app.html",
			"site.aliases":           []string{"/index.html"},
			"site.spa_fallback":      false,
			"server.port":            8080,
			"server.max_attempts":    1,
			"banner.open_browser":    true,
		},
		Title: "The W.O.L.F. Den - Demo Server",
		Steps: []string{
			"Fill out the Hunt Planner form completely",
			"Click 'Lock Target' to see persona intelligence",
			"Click 'Battle Card' to generate a printable reference",
			"Test the print functionality",
		},
	},
}

// Lookup returns the named profile. An empty name selects Default.
func Lookup(name string) (Profile, error) {
	if name == "" {
		name = Default
	}
	p, ok := catalog[name]
	if !ok {
		return Profile{}, fmt.Errorf("%q (available: %v): %w", name, Names(), ErrUnknownProfile)
	}
	return p, nil
}

// Names returns the profile names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
