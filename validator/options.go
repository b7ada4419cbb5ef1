package validator

import (
	"github.com/kestrelapi/oas32/oaslog"
	"github.com/kestrelapi/oas32/registry"
)

// Option configures a Validator.
type Option func(*validateConfig) error

type validateConfig struct {
	includeWarnings bool
	strictMode      bool
	logger          oaslog.Logger
	registry        *registry.Registry
	selfURI         string
	baseURI         string
}

func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		includeWarnings: true,
		strictMode:      false,
		logger:          oaslog.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithIncludeWarnings enables or disables best-practice warnings in the
// returned issue list. Default: true.
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithStrictMode sets Validator.StrictMode. No rule in the catalog
// consults it, so it does not change the issues reported. Default: false.
func WithStrictMode(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithLogger sets a structured logger for diagnostic output during
// validation (a single Debug record with the issue count when a run
// completes). Default is a no-op logger.
func WithLogger(l oaslog.Logger) Option {
	return func(cfg *validateConfig) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}

// WithRegistry sets the document registry consulted when a $ref points
// outside the document being validated.
func WithRegistry(r *registry.Registry) Option {
	return func(cfg *validateConfig) error {
		cfg.registry = r
		return nil
	}
}

// WithSelfURI sets a URI that identifies the document under validation
// alongside its own $self: a $ref whose document part equals either one
// exactly is treated as a same-document ref.
func WithSelfURI(uri string) Option {
	return func(cfg *validateConfig) error {
		cfg.selfURI = uri
		return nil
	}
}

// WithBaseURI sets a caller-supplied base URI: a $ref whose document part
// equals it exactly is treated as a same-document ref. Relative $refs and
// $self are not resolved against it.
func WithBaseURI(uri string) Option {
	return func(cfg *validateConfig) error {
		cfg.baseURI = uri
		return nil
	}
}
