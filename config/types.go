package config

// Config represents the complete configuration structure
type Config struct {
	FRED    FREDConfig    `mapstructure:"fred"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FREDConfig holds FRED API connection details
type FREDConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	APIKeyFile     string `mapstructure:"api_key_file"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
