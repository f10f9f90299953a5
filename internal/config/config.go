// This file defines the configuration structure for the application.
package config

import (
	// use Viper for loading the config.yml file.
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration settings for the console.
// It maps directly to the structure of config.yml.
type Config struct {
	Seed bool `mapstructure:"seed"`
	Site struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"site"`
	Notifications struct {
		TTLSeconds int `mapstructure:"ttl_seconds"`
	} `mapstructure:"notifications"`
	Insight struct {
		BaseURL        string `mapstructure:"base_url"`
		APIKey         string `mapstructure:"api_key"`
		Model          string `mapstructure:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"insight"`
}

// NotificationTTL returns the toast lifetime as a duration.
func (c *Config) NotificationTTL() time.Duration {
	return time.Duration(c.Notifications.TTLSeconds) * time.Second
}

// InsightTimeout returns the insight request deadline as a duration.
func (c *Config) InsightTimeout() time.Duration {
	return time.Duration(c.Insight.TimeoutSeconds) * time.Second
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or "yaml"
	viper.AddConfigPath(".")      // looking for config in the current directory

	// --- Environment Variable Overrides ---
	// e.g. NEXUS_INSIGHT_API_KEY overrides the `insight.api_key` key.
	viper.SetEnvPrefix("NEXUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("seed", true)
	viper.SetDefault("site.name", "Nexus Scanlation")
	viper.SetDefault("notifications.ttl_seconds", 4)
	viper.SetDefault("insight.base_url", "")
	viper.SetDefault("insight.api_key", "")
	viper.SetDefault("insight.model", "gemini-3-flash-preview")
	viper.SetDefault("insight.timeout_seconds", 30)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error and use defaults
		} else {
			// Config file was found but another error was produced
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
