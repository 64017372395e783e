// Package config loads application settings from an optional config.yaml with
// environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Inventory     InventoryConfig     `mapstructure:"inventory"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Assist        AssistConfig        `mapstructure:"assist"`
	Log           LogConfig           `mapstructure:"log"`
}

type InventoryConfig struct {
	// ReorderPoint is the quantity at or below which a product with stock
	// counts as Low Stock.
	ReorderPoint int `mapstructure:"reorder_point"`
}

type NotificationsConfig struct {
	// DisplayDuration is how long a notification stays visible before it is
	// dismissed automatically.
	DisplayDuration time.Duration `mapstructure:"display_duration"`
}

type AssistConfig struct {
	// ProcessingDelay simulates how long the assistant takes to parse an
	// instruction before its command applies.
	ProcessingDelay time.Duration `mapstructure:"processing_delay"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("inventory.reorder_point", 50)
	v.SetDefault("notifications.display_duration", 4*time.Second)
	v.SetDefault("assist.processing_delay", 2*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads config.yaml from ./configs or the working directory if present,
// applies AGORA_* environment overrides, and falls back to defaults for
// everything else.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("AGORA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file; defaults and environment variables apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Inventory.ReorderPoint < 0 {
		return nil, fmt.Errorf("inventory.reorder_point cannot be negative, got %d", cfg.Inventory.ReorderPoint)
	}
	if cfg.Notifications.DisplayDuration < 0 {
		return nil, fmt.Errorf("notifications.display_duration cannot be negative, got %s", cfg.Notifications.DisplayDuration)
	}

	return &cfg, nil
}
