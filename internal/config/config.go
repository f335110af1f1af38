// Package config manages application configuration.
package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Environment variables that override the configuration file.
const (
	EnvConfigPath = "RICHMARK_CONFIG"
	EnvSanitize   = "RICHMARK_SANITIZE"
	EnvAlignStyle = "RICHMARK_ALIGN_STYLE"
	EnvLogLevel   = "RICHMARK_LOG_LEVEL"
)

// Config represents the application configuration.
type Config struct {
	DefaultFrom string       `yaml:"default_from"` // empty means detect
	DefaultTo   string       `yaml:"default_to"`
	Parse       ParseConfig  `yaml:"parse"`
	Export      ExportConfig `yaml:"export"`
	Fallback    string       `yaml:"fallback,omitempty"` // Slate JSON file used when input yields nothing
	LogLevel    string       `yaml:"log_level"`
}

// ParseConfig contains options applied when reading markup.
type ParseConfig struct {
	Sanitize           bool `yaml:"sanitize"`
	CollapseWhitespace bool `yaml:"collapse_whitespace"`
	AlignStyle         bool `yaml:"align_style"`
}

// ExportConfig contains options applied when writing.
type ExportConfig struct {
	AlignStyle bool `yaml:"align_style"`
	Pretty     bool `yaml:"pretty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultTo: "slate",
		Export: ExportConfig{
			Pretty: true,
		},
		LogLevel: "warn",
	}
}

// field binds a dotted key to a Config field.
type field struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func stringField(p func(c *Config) *string) field {
	return field{
		get: func(c *Config) string { return *p(c) },
		set: func(c *Config, v string) error {
			*p(c) = v
			return nil
		},
	}
}

func boolField(p func(c *Config) *bool) field {
	return field{
		get: func(c *Config) string { return strconv.FormatBool(*p(c)) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid boolean %q", v)
			}
			*p(c) = b
			return nil
		},
	}
}

var fields = map[string]field{
	"default_from":              stringField(func(c *Config) *string { return &c.DefaultFrom }),
	"default_to":                stringField(func(c *Config) *string { return &c.DefaultTo }),
	"parse.sanitize":            boolField(func(c *Config) *bool { return &c.Parse.Sanitize }),
	"parse.collapse_whitespace": boolField(func(c *Config) *bool { return &c.Parse.CollapseWhitespace }),
	"parse.align_style":         boolField(func(c *Config) *bool { return &c.Parse.AlignStyle }),
	"export.align_style":        boolField(func(c *Config) *bool { return &c.Export.AlignStyle }),
	"export.pretty":             boolField(func(c *Config) *bool { return &c.Export.Pretty }),
	"fallback":                  stringField(func(c *Config) *string { return &c.Fallback }),
	"log_level":                 stringField(func(c *Config) *string { return &c.LogLevel }),
}

// Keys returns the settable configuration keys (sorted).
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "parse.sanitize".
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	return f.get(c), nil
}

// Set assigns a dotted key from its string form.
func (c *Config) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}
	if err := f.set(c, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// ApplyEnv overrides settings from RICHMARK_* environment variables.
// Boolean variables only switch features on.
func (c *Config) ApplyEnv() {
	if GetEnvBool(EnvSanitize) {
		c.Parse.Sanitize = true
	}
	if GetEnvBool(EnvAlignStyle) {
		c.Parse.AlignStyle = true
		c.Export.AlignStyle = true
	}
	c.LogLevel = GetEnvOrDefault(EnvLogLevel, c.LogLevel)
}
