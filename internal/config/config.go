package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config carries the env-overridable defaults for the CLI. Flags always win
// over these values; these values win over the built-in defaults.
type Config struct {
	DefaultSystem        string  `envconfig:"ZKCOST_DEFAULT_SYSTEM" default:"aztec"`
	DefaultBatchSize     int     `envconfig:"ZKCOST_DEFAULT_BATCH_SIZE" default:"500"`
	DefaultSecurityBits  int     `envconfig:"ZKCOST_DEFAULT_SECURITY_BITS" default:"128"`
	DefaultHardwareScale float64 `envconfig:"ZKCOST_DEFAULT_HARDWARE_SCALE" default:"1.0"`
	LogLevel             string  `envconfig:"ZKCOST_LOG_LEVEL" default:"info"`
}

func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
