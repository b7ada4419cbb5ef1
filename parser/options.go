package parser

import (
	"fmt"

	"github.com/kestrelapi/oas32/internal/optioncheck"
	"github.com/kestrelapi/oas32/oaslog"
	"github.com/kestrelapi/oas32/registry"
	"github.com/kestrelapi/oas32/tree"
)

// Option configures a parse operation.
type Option func(*parseConfig) error

type parseConfig struct {
	filePath *string
	bytes    []byte
	str      *string

	format   tree.Format
	logger   oaslog.Logger
	registry *registry.Registry
	selfURI  string
}

func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		format: tree.FormatAuto,
		logger: oaslog.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := optioncheck.ExactlyOneInputSource(
		"parser: must specify an input source (use WithFilePath, WithBytes, or WithString)",
		"parser: must specify exactly one input source",
		cfg.filePath != nil, cfg.bytes != nil, cfg.str != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath sets the file to read and parse.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes sets raw input bytes to parse.
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithString sets raw input text to parse.
func WithString(s string) Option {
	return func(cfg *parseConfig) error {
		cfg.str = &s
		return nil
	}
}

// WithFormat forces the input to be interpreted as JSON or YAML, skipping
// format sniffing. Default is FormatAuto.
func WithFormat(f tree.Format) Option {
	return func(cfg *parseConfig) error {
		cfg.format = f
		return nil
	}
}

// WithLogger sets the structured logger stored on the parse context.
// Default is a no-op logger. The parser emits no log records through it.
func WithLogger(l oaslog.Logger) Option {
	return func(cfg *parseConfig) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}

// WithRegistry sets the document registry used to resolve cross-document
// $ref targets and to register this document once parsed.
func WithRegistry(r *registry.Registry) Option {
	return func(cfg *parseConfig) error {
		cfg.registry = r
		return nil
	}
}

// WithSelfURI overrides the document's own canonical URI, used as the key
// under which it is registered and as the base for resolving relative
// refs, when the document does not declare $self.
func WithSelfURI(uri string) Option {
	return func(cfg *parseConfig) error {
		cfg.selfURI = uri
		return nil
	}
}
