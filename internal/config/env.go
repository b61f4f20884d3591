package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix is the prefix of every environment variable read by ApplyEnv.
const EnvPrefix = "TXED_"

// LookupFunc looks up an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// envBinding maps one environment variable onto a setting.
type envBinding struct {
	name  string
	path  string
	apply func(c *Config, val string) error
}

func envBindings() []envBinding {
	return []envBinding{
		{EnvPrefix + "COALESCE", "segments.coalesce", func(c *Config, val string) error {
			return parseBool(val, &c.Segments.Coalesce)
		}},
		{EnvPrefix + "VALIDATE", "segments.validate", func(c *Config, val string) error {
			return parseBool(val, &c.Segments.Validate)
		}},
		{EnvPrefix + "NORMALIZATION", "text.normalization", func(c *Config, val string) error {
			c.Text.Normalization = val
			return nil
		}},
		{EnvPrefix + "LOG_LEVEL", "log.level", func(c *Config, val string) error {
			c.Log.Level = val
			return nil
		}},
	}
}

// ApplyEnv overrides settings in cfg from environment variables.
// Empty string values are treated as valid values, not as unset.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for _, b := range envBindings() {
		val, ok := lookup(b.name)
		if !ok {
			continue
		}
		if err := b.apply(cfg, val); err != nil {
			return fmt.Errorf("%w: %s (%s): %w", ErrInvalidConfig, b.name, b.path, err)
		}
	}
	return cfg.Validate()
}

func parseBool(val string, dst *bool) error {
	b, err := strconv.ParseBool(val)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
