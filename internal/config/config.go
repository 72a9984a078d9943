// Package config loads application settings from an optional config file
// and OUTLAY_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Dates DatesConfig
	UI    UIConfig
	Log   LogConfig
}

// DatesConfig holds the layouts accepted when parsing Date cells and
// range bounds, in priority order.
type DatesConfig struct {
	InputLayouts []string `mapstructure:"input_layouts"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// LogConfig holds logging settings. The TUI owns the terminal, so logs go
// to a file; an empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix OUTLAY_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("dates.input_layouts", []string{
		"2006-01-02",
		"2006-01-02T15:04:05",
		"02/01/2006",
		"2/1/2006",
	})
	v.SetDefault("ui.currency_symbol", "")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("OUTLAY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "outlay"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("OUTLAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
