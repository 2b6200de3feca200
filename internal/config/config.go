// Package config loads the CLI's non-functional knobs — log level and
// log file path — never reasoner semantics.
package config

import (
	"github.com/spf13/viper"
)

// Config holds the ambient settings for the elreasoner CLI.
type Config struct {
	LogLevel string `mapstructure:"EL_LOG_LEVEL"`
	LogFile  string `mapstructure:"EL_LOG_FILE"`
}

// Load reads EL_LOG_LEVEL / EL_LOG_FILE from the environment (and an
// optional .env file in the working directory, if present), falling
// back to defaults. The CLI never requires a config file to exist.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("EL_LOG_LEVEL", "info")
	v.SetDefault("EL_LOG_FILE", "elreasoner.log")

	v.BindEnv("EL_LOG_LEVEL")
	v.BindEnv("EL_LOG_FILE")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		LogLevel: v.GetString("EL_LOG_LEVEL"),
		LogFile:  v.GetString("EL_LOG_FILE"),
	}
	return cfg, nil
}
