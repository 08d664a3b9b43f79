// Package config provides configuration structures and loading for logreport.
package config

// Config represents the complete application configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults" mapstructure:"defaults"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// DefaultsConfig holds the report field defaults applied when the
// corresponding CLI flags are not given.
type DefaultsConfig struct {
	Field  string `yaml:"field" mapstructure:"field"`
	Target string `yaml:"target" mapstructure:"target"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values. Diagnostics
// default to stderr so the report table on stdout stays pipeable.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Field:  "url",
			Target: "response_time",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
}
