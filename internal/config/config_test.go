// This test file verifies the configuration loading logic using Viper.

package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults when no config file", func(t *testing.T) {
		// Ensure no config file exists for this test
		os.Remove("config.yml")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned an error: %v", err)
		}

		if !cfg.Seed {
			t.Error("Expected seeding to default to on")
		}
		if cfg.Site.Name != "Nexus Scanlation" {
			t.Errorf("Expected default site name, got '%s'", cfg.Site.Name)
		}
		if cfg.Notifications.TTLSeconds != 4 {
			t.Errorf("Expected default toast TTL of 4s, got %d", cfg.Notifications.TTLSeconds)
		}
		if cfg.Insight.Model != "gemini-3-flash-preview" {
			t.Errorf("Expected default insight model, got '%s'", cfg.Insight.Model)
		}
		if cfg.InsightTimeout() != 30*time.Second {
			t.Errorf("Expected default insight timeout of 30s, got %v", cfg.InsightTimeout())
		}
		if cfg.NotificationTTL() != 4*time.Second {
			t.Errorf("Expected notification TTL of 4s, got %v", cfg.NotificationTTL())
		}
	})

	t.Run("Loads from config file", func(t *testing.T) {
		configContent := `
seed: false
notifications:
  ttl_seconds: 2
insight:
  base_url: "http://localhost:9999/v1"
  model: "test-model"
unknown_setting: "should be ignored"
`
		// Create the config file in the current directory so Viper can find it.
		configPath := "config.yml"
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config file: %v", err)
		}
		defer os.Remove(configPath)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned an error: %v", err)
		}

		if cfg.Seed {
			t.Error("Expected seeding to be disabled")
		}
		if cfg.Notifications.TTLSeconds != 2 {
			t.Errorf("Expected toast TTL of 2s, got %d", cfg.Notifications.TTLSeconds)
		}
		if cfg.Insight.BaseURL != "http://localhost:9999/v1" {
			t.Errorf("Expected insight base URL from file, got '%s'", cfg.Insight.BaseURL)
		}
		if cfg.Insight.TimeoutSeconds != 30 {
			t.Errorf("Expected default insight timeout of 30, got %d", cfg.Insight.TimeoutSeconds)
		}
	})
}
