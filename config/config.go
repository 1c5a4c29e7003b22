// Package config loads and validates process-wide configuration for an
// analysis session. The API credential is read once at startup; a missing or
// empty credential is a fatal condition, not a per-request error.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings for one analyzer process.
type Config struct {
	// APIKey is the YouTube Data API credential. Required.
	APIKey string

	// MaxVideos caps how many catalog entries are ingested per session.
	MaxVideos int

	// BestEffort opts into partial results when a later catalog page or
	// stats batch fails mid-ingestion. Off by default: a truncated dataset
	// silently biases every downstream metric.
	BestEffort bool

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	LogLevel string

	// PDFPath and CSVPath, when set, select the report artifacts to write.
	PDFPath string
	CSVPath string
}

// DefaultMaxVideos bounds ingestion when no explicit ceiling is given.
const DefaultMaxVideos = 120

// Load reads configuration from an optional .env file and the environment.
// Keys use the CHANNELSCOPE_ prefix (CHANNELSCOPE_API_KEY etc.); the bare
// YOUTUBE_API_KEY is honored as a fallback for the credential.
func Load() (*Config, error) {
	// Best effort; a missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CHANNELSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("max_videos", DefaultMaxVideos)
	v.SetDefault("log_level", "info")

	cfg := &Config{
		APIKey:     v.GetString("api_key"),
		MaxVideos:  v.GetInt("max_videos"),
		BestEffort: v.GetBool("best_effort"),
		LogLevel:   v.GetString("log_level"),
		PDFPath:    v.GetString("pdf_path"),
		CSVPath:    v.GetString("csv_path"),
	}

	if cfg.APIKey == "" {
		// Fallback used by most YouTube tooling.
		v2 := viper.New()
		v2.AutomaticEnv()
		cfg.APIKey = v2.GetString("YOUTUBE_API_KEY")
	}

	return cfg, nil
}

// Validate checks the configuration for fatal startup conditions.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API key is required (set CHANNELSCOPE_API_KEY or YOUTUBE_API_KEY)")
	}
	if c.MaxVideos <= 0 {
		return fmt.Errorf("max_videos must be positive, got %d", c.MaxVideos)
	}
	return nil
}
