package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a bracketgen run.
// Values are populated from .bracketgen.yaml, BRACKETGEN_* env vars, and
// CLI flags.
type Config struct {
	OutputDir     string `mapstructure:"output_dir"`
	RatesFile     string `mapstructure:"rates_file"`
	TelemetryPath string `mapstructure:"telemetry_path"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("output_dir", ".")
	viper.SetDefault("rates_file", "")
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
