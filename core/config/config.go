package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"qa-preview/core/logger"
	"qa-preview/core/middleware/headers"
	"qa-preview/core/profile"
	"qa-preview/core/server"
	"qa-preview/core/storage"
	"qa-preview/feature/banner"
	"qa-preview/feature/spa"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the listener and port probe.
	Server server.Config `mapstructure:"server"`
	// Site holds configuration for the served build output.
	Site spa.Config `mapstructure:"site"`
	// Headers holds the static response header policy.
	Headers headers.Config `mapstructure:"headers"`
	// Banner holds configuration for the console banner.
	Banner banner.Config `mapstructure:"banner"`
	// Storage holds configuration for the bucket builds are fetched from.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Profile is the resolved preset. It is not read from the environment.
	Profile profile.Profile `mapstructure:"-"`
}

// LoadConfig loads configuration for the given profile from struct defaults,
// the profile preset, the .env file in path and environment variables, in
// increasing order of precedence. An empty profileName falls back to
// SERVER_PROFILE and then to profile.Default.
func LoadConfig(path, profileName string) (*Config, error) {
	// Ignore error if file doesn't exist. Variables already set in the
	// environment are kept.
	_ = godotenv.Load(filepath.Join(path, ".env"))

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if profileName == "" {
		profileName = v.GetString("server.profile")
	}
	p, err := profile.Lookup(profileName)
	if err != nil {
		return nil, err
	}
	for key, value := range p.Defaults {
		v.SetDefault(key, value)
	}
	v.Set("server.profile", p.Name)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.Profile = p

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
