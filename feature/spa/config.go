package spa

// DefaultAssetsPrefix is the conventional output directory for hashed bundles.
const DefaultAssetsPrefix = "/assets/"

// DefaultFallbackDocument is served for routes that match no file.
const DefaultFallbackDocument = "index.html"

// Config holds configuration for the served site.
type Config struct {
	// Root is the build output directory. Relative paths are resolved
	// against the working directory.
	Root string `mapstructure:"root" default:"dist"`
	// FallbackDocument is the document served for "/" and unmatched routes.
	FallbackDocument string `mapstructure:"fallback_document" default:"index.html"`
	// AssetsPrefix marks paths that are always real files. A miss under
	// this prefix is a 404, never a route. Empty disables the rule.
	AssetsPrefix string `mapstructure:"assets_prefix" default:"/assets/"`
	// Fallback enables client-side routing support. When false only "/"
	// maps to the fallback document.
	Fallback bool `mapstructure:"spa_fallback" default:"true"`
	// Aliases are request paths that always serve the fallback document,
	// even when a file of that name exists.
	Aliases []string `mapstructure:"aliases" default:""`
}
