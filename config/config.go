// Package config loads tool configuration for the curvelib binaries.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all tool configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Store  StoreConfig  `mapstructure:"store"`
	Market MarketConfig `mapstructure:"market"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Console  bool   `mapstructure:"console"`
	File     bool   `mapstructure:"file"`
	FilePath string `mapstructure:"file_path"`
}

// StoreConfig selects the reference data backend.
type StoreConfig struct {
	// Driver is "postgres" or "sqlite3". Empty means bundled data only.
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// MarketConfig holds default market conventions.
type MarketConfig struct {
	Calendar       string `mapstructure:"calendar"`
	RollConvention string `mapstructure:"roll_convention"`
	DayCount       string `mapstructure:"day_count"`
}

// Load reads curvelib.yaml from the given path (or the working directory and
// $HOME/.config/curvelib when path is empty), applying defaults and
// CURVELIB_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("curvelib")
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/curvelib")
	}

	v.SetEnvPrefix("CURVELIB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)
	v.SetDefault("log.file", false)
	v.SetDefault("store.driver", "")
	v.SetDefault("store.dsn", "")
	v.SetDefault("market.calendar", "TARGET")
	v.SetDefault("market.roll_convention", "MODIFIED_FOLLOWING")
	v.SetDefault("market.day_count", "ACT/365F")
}
