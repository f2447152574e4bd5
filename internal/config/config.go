// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Wordnet() WordnetConfig
	Console() ConsoleConfig
}

// Config holds the entire application configuration. It uses private fields
// to enforce access through the Interface's getter methods; decoding goes
// through the exported rawConfig mirror since mapstructure cannot set
// unexported fields.
type Config struct {
	logger  LoggerConfig
	wordnet WordnetConfig
	console ConsoleConfig
}

// rawConfig mirrors Config with exported fields for viper/mapstructure.
type rawConfig struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Wordnet WordnetConfig `mapstructure:"wordnet" yaml:"wordnet"`
	Console ConsoleConfig `mapstructure:"console" yaml:"console"`
}

// -- Interface Method Implementations (Getters) --

func (c *Config) Logger() LoggerConfig   { return c.logger }
func (c *Config) Wordnet() WordnetConfig { return c.wordnet }
func (c *Config) Console() ConsoleConfig { return c.console }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// WordnetConfig points at the lexical resource documents. Both paths can be
// overridden by positional CLI arguments.
type WordnetConfig struct {
	Source      string `mapstructure:"source" yaml:"source"`
	SemFeatures string `mapstructure:"sem_features" yaml:"sem_features"`
}

// ConsoleConfig tunes the interactive query console.
type ConsoleConfig struct {
	Prompt string `mapstructure:"prompt" yaml:"prompt"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	cfg, err := NewConfigFromViper(v)
	if err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "wnquery-cli")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Console --
	v.SetDefault("console.prompt", ">")
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg := &Config{logger: raw.Logger, wordnet: raw.Wordnet, console: raw.Console}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	switch c.logger.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logger.format must be \"console\" or \"json\", got %q", c.logger.Format)
	}
	if c.console.Prompt == "" {
		return fmt.Errorf("console.prompt must not be empty")
	}
	return nil
}
