package internal

import (
	"github.com/veldrin/notable2zim/internal/convert"
	"github.com/veldrin/notable2zim/internal/localtime"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config    *Config
	converter convert.Converter
	location  *localtime.Normalizer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithConverter injects a markup converter, replacing the pandoc
// subprocess. Used by tests.
func WithConverter(c convert.Converter) Option {
	return func(a *application) {
		a.converter = c
	}
}

// WithNormalizer injects a timestamp normalizer with a fixed timezone.
// Used by tests; production defaults to the process's local zone.
func WithNormalizer(n *localtime.Normalizer) Option {
	return func(a *application) {
		a.location = n
	}
}
