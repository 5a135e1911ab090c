package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	Env    string `mapstructure:"APP_ENV"` // development | production
	DBPath string `mapstructure:"DB_PATH"`

	// Low-stock scanner
	LimiteDias   int64         `mapstructure:"ALERT_THRESHOLD_DAYS"`
	ScanWarmup   time.Duration `mapstructure:"SCAN_WARMUP"`
	ScanInterval time.Duration `mapstructure:"SCAN_INTERVAL"`
	AlertGap     time.Duration `mapstructure:"ALERT_GAP"`

	// Temporal debit engine
	DebitCheckInterval time.Duration `mapstructure:"DEBIT_CHECK_INTERVAL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_PATH", "remedios.db")
	viper.SetDefault("ALERT_THRESHOLD_DAYS", 5)
	viper.SetDefault("SCAN_WARMUP", "10s")
	viper.SetDefault("SCAN_INTERVAL", "4h")
	// Pause between successive toasts — rapid-fire delivery is known to be
	// dropped by the desktop notification transport.
	viper.SetDefault("ALERT_GAP", "6s")
	viper.SetDefault("DEBIT_CHECK_INTERVAL", "10m")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
