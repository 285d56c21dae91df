// Package config loads the application configuration: an optional YAML file
// plus ADOPT_* environment overrides, with working defaults for both.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the optimizer.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Port        string `mapstructure:"port"`
	StaticDir   string `mapstructure:"static_dir"`   // optional override for the embedded form
	OpenBrowser bool   `mapstructure:"open_browser"` // open the form on startup
}

// StoreConfig holds scenario persistence options.
type StoreConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// Load reads configuration from path (optional) and the environment.
// With an empty path, only defaults and env overrides apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.static_dir", "")
	v.SetDefault("server.open_browser", false)
	v.SetDefault("store.dir", defaultScenarioDir())
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("ADOPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &conf, nil
}

func defaultScenarioDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "./scenarios"
	}
	return wd + string(os.PathSeparator) + "scenarios"
}
