// Package config holds runtime configuration, loaded from the environment
// (MONORAIL_* variables) and an optional monorail.yml in the working
// directory.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Threads is the worker count for the parallel root-split search.
	Threads int
	// LogLevel is a zerolog level name.
	LogLevel string
	// Layout is the path of a starting-position file; empty means the
	// built-in starting layout.
	Layout string
}

// Load reads the configuration. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("monorail")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("threads", 1)
	v.SetDefault("log-level", "info")
	v.SetDefault("layout", "")
	v.SetConfigName("monorail")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return &Config{
		Threads:  v.GetInt("threads"),
		LogLevel: v.GetString("log-level"),
		Layout:   v.GetString("layout"),
	}, nil
}
