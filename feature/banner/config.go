package banner

// Config holds configuration for the console banner.
type Config struct {
	// OpenBrowser opens the application URL once the server listens.
	OpenBrowser bool `mapstructure:"open_browser" default:"false"`
}
