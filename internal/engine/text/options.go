package text

import (
	"log/slog"

	"github.com/dshills/txed/internal/engine/segment"
	"golang.org/x/text/unicode/norm"
)

// Default configuration values.
const (
	DefaultCoalesce = true
	DefaultValidate = false
)

// Option configures buffer construction.
type Option func(*settings)

type settings struct {
	coalesce  bool
	validate  bool
	normalize bool
	form      norm.Form
	logger    *slog.Logger
}

func newSettings(opts []Option) settings {
	s := settings{
		coalesce: DefaultCoalesce,
		validate: DefaultValidate,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) segmentOptions() segment.Options {
	return segment.Options{Coalesce: s.coalesce}
}

// WithCoalesce controls whether adjacent segments that reference contiguous
// runes of the same leaf are merged when a buffer is composed.
func WithCoalesce(enabled bool) Option {
	return func(s *settings) {
		s.coalesce = enabled
	}
}

// WithValidation runs a full invariant check on every composed segment map.
// Intended for tests and debugging; it costs time linear in the map size.
func WithValidation(enabled bool) Option {
	return func(s *settings) {
		s.validate = enabled
	}
}

// WithNormalization normalizes leaf text to the given Unicode form
// before it is stored.
func WithNormalization(form norm.Form) Option {
	return func(s *settings) {
		s.normalize = true
		s.form = form
	}
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}
