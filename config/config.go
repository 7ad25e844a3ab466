package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/s0up4200/gofred/fred"
)

// Load loads the configuration from file. A missing config file is not an
// error when no explicit path was given, since the API key may come from
// the FRED_API_KEY environment variable alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Environment fallback for the API key
	v.BindEnv("fred.api_key", fred.EnvKeyName)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".gofred"))
		}

		// Check /etc
		v.AddConfigPath("/etc/gofred/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// FRED defaults
	v.SetDefault("fred.base_url", fred.DefaultBaseURL)
	v.SetDefault("fred.timeout_seconds", 30)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.FRED.BaseURL == "" {
		return fmt.Errorf("fred.base_url is required")
	}

	if cfg.FRED.APIKeyFile != "" {
		if _, err := os.Stat(cfg.FRED.APIKeyFile); err != nil {
			return fmt.Errorf("fred.api_key_file does not exist: %s", cfg.FRED.APIKeyFile)
		}
	}

	if cfg.FRED.TimeoutSeconds < 0 {
		return fmt.Errorf("fred.timeout_seconds must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// ClientOptions translates the FRED section into client options.
func (c *FREDConfig) ClientOptions() []fred.Option {
	opts := []fred.Option{
		fred.WithBaseURL(c.BaseURL),
	}
	if c.APIKey != "" {
		opts = append(opts, fred.WithAPIKey(c.APIKey))
	}
	if c.APIKeyFile != "" {
		opts = append(opts, fred.WithAPIKeyFile(c.APIKeyFile))
	}
	if c.TimeoutSeconds > 0 {
		opts = append(opts, fred.WithTimeout(time.Duration(c.TimeoutSeconds)*time.Second))
	}
	return opts
}
