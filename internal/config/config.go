package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dshills/txed/internal/engine/text"
	"golang.org/x/text/unicode/norm"
)

// Normalization names accepted in configuration.
const (
	NormalizationNone = "none"
	NormalizationNFC  = "NFC"
	NormalizationNFD  = "NFD"
	NormalizationNFKC = "NFKC"
	NormalizationNFKD = "NFKD"
)

// Config holds buffer construction settings.
type Config struct {
	Segments SegmentsConfig `toml:"segments"`
	Text     TextConfig     `toml:"text"`
	Log      LogConfig      `toml:"log"`
}

// SegmentsConfig controls segment map construction.
type SegmentsConfig struct {
	// Coalesce merges adjacent segments referencing contiguous runes of
	// the same leaf.
	Coalesce bool `toml:"coalesce"`

	// Validate checks map invariants after every composition.
	Validate bool `toml:"validate"`
}

// TextConfig controls how leaf text is stored.
type TextConfig struct {
	// Normalization is the Unicode normalization form applied to new
	// leaves: none, NFC, NFD, NFKC or NFKD.
	Normalization string `toml:"normalization"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is the minimum level logged: debug, info, warn or error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Segments: SegmentsConfig{
			Coalesce: text.DefaultCoalesce,
			Validate: text.DefaultValidate,
		},
		Text: TextConfig{Normalization: NormalizationNone},
		Log:  LogConfig{Level: "info"},
	}
}

// Validate checks that every setting holds a supported value.
func (c Config) Validate() error {
	if _, _, err := c.NormalizationForm(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// NormalizationForm returns the configured normalization form.
// The boolean is false when normalization is disabled.
func (c Config) NormalizationForm() (norm.Form, bool, error) {
	switch strings.ToUpper(strings.TrimSpace(c.Text.Normalization)) {
	case "", "NONE":
		return 0, false, nil
	case NormalizationNFC:
		return norm.NFC, true, nil
	case NormalizationNFD:
		return norm.NFD, true, nil
	case NormalizationNFKC:
		return norm.NFKC, true, nil
	case NormalizationNFKD:
		return norm.NFKD, true, nil
	}
	return 0, false, fmt.Errorf("%w: text.normalization %q", ErrInvalidConfig, c.Text.Normalization)
}

// LogLevel returns the configured log level.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(c.Log.Level) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return level, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// Options converts the configuration into buffer construction options.
// A nil logger leaves logging disabled.
func (c Config) Options(logger *slog.Logger) ([]text.Option, error) {
	form, normalize, err := c.NormalizationForm()
	if err != nil {
		return nil, err
	}

	opts := []text.Option{
		text.WithCoalesce(c.Segments.Coalesce),
		text.WithValidation(c.Segments.Validate),
	}
	if normalize {
		opts = append(opts, text.WithNormalization(form))
	}
	if logger != nil {
		opts = append(opts, text.WithLogger(logger))
	}
	return opts, nil
}
