// Package config provides configuration management for mdvars using Viper.
package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/mdvars/internal/engine"
	"github.com/thoreinstein/mdvars/internal/errors"
	"github.com/thoreinstein/mdvars/internal/paths"
	"github.com/thoreinstein/mdvars/internal/pattern"
)

// AppName is the application name used for config file naming.
const AppName = "mdvars"

// Config represents the top-level configuration structure. Every field maps
// onto one engine option; see engine.Options for the semantics.
type Config struct {
	OpenDelimiter             string `mapstructure:"open_delimiter" yaml:"open_delimiter"`
	CloseDelimiter            string `mapstructure:"close_delimiter" yaml:"close_delimiter"`
	DefaultSeparator          string `mapstructure:"default_separator" yaml:"default_separator"`
	MissingValueText          string `mapstructure:"missing_value_text" yaml:"missing_value_text"`
	CaseInsensitive           bool   `mapstructure:"case_insensitive" yaml:"case_insensitive"`
	SupportNestedProperties   bool   `mapstructure:"support_nested_properties" yaml:"support_nested_properties"`
	ArrayJoinSeparator        string `mapstructure:"array_join_separator" yaml:"array_join_separator"`
	PreserveOriginalOnMissing bool   `mapstructure:"preserve_original_on_missing" yaml:"preserve_original_on_missing"`
	ShowDataOnly              bool   `mapstructure:"show_data_only" yaml:"show_data_only"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support (MDVARS_OPEN_DELIMITER etc.)
	viper.SetEnvPrefix("MDVARS")
	viper.AutomaticEnv()

	defaults := engine.DefaultOptions()
	viper.SetDefault("open_delimiter", defaults.OpenDelimiter)
	viper.SetDefault("close_delimiter", defaults.CloseDelimiter)
	viper.SetDefault("default_separator", defaults.DefaultSeparator)
	viper.SetDefault("missing_value_text", defaults.MissingValueText)
	viper.SetDefault("case_insensitive", defaults.CaseInsensitive)
	viper.SetDefault("support_nested_properties", defaults.SupportNestedProperties)
	viper.SetDefault("array_join_separator", defaults.ArrayJoinSeparator)
	viper.SetDefault("preserve_original_on_missing", defaults.PreserveOriginalOnMissing)
	viper.SetDefault("show_data_only", defaults.ShowDataOnly)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found
// (when path is empty). Every failure is marked with [errors.ErrInvalidConfig]
// so callers can classify it without string matching.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// A user-specified path that doesn't exist is an error; an
			// implicit load just falls back to defaults.
			if path != "" {
				return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrInvalidConfig)
			}
		} else {
			return nil, errors.Mark(errors.Wrap(err, "reading config file"), errors.ErrInvalidConfig)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "unmarshaling config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// EngineOptions converts the configuration into engine options. Delimiter
// validation is deliberately not done here: the pattern compiler falls back
// to built-in tokens on unusable delimiters, so a broken config file can
// never break the pipeline.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		OpenDelimiter:             c.OpenDelimiter,
		CloseDelimiter:            c.CloseDelimiter,
		DefaultSeparator:          c.DefaultSeparator,
		MissingValueText:          c.MissingValueText,
		CaseInsensitive:           c.CaseInsensitive,
		SupportNestedProperties:   c.SupportNestedProperties,
		ArrayJoinSeparator:        c.ArrayJoinSeparator,
		PreserveOriginalOnMissing: c.PreserveOriginalOnMissing,
		ShowDataOnly:              c.ShowDataOnly,
	}
}

// TokensValid reports whether the configured delimiter tokens are usable as
// given. Unusable tokens are not an error, since the pattern compiler falls
// back to the built-in defaults, but the CLI logs a warning for them.
func (c *Config) TokensValid() bool {
	t := pattern.Tokens{Open: c.OpenDelimiter, Close: c.CloseDelimiter, Separator: c.DefaultSeparator}
	return t.Valid()
}
