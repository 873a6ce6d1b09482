package headers

// Config holds the static response header policy.
type Config struct {
	// CORS allows any origin to fetch the site.
	CORS bool `mapstructure:"cors" default:"false"`
	// NoCache disables browser caching entirely.
	NoCache bool `mapstructure:"no_cache" default:"false"`
	// CacheControl is sent verbatim when NoCache is off. Empty sends nothing.
	CacheControl string `mapstructure:"cache_control" default:""`
}

// Enabled reports whether the policy sets any header at all.
func (c Config) Enabled() bool {
	return c.CORS || c.NoCache || c.CacheControl != ""
}
