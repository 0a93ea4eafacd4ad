package rampaged

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var _defaultValidator = validator.New(validator.WithRequiredStructEnabled())

// Options is the explicit configuration created once at process start and
// passed to the components that need it. There are no paging policies yet;
// it carries the logger and validator shared by those components.
type Options struct {
	logger    zerolog.Logger
	validator *validator.Validate
}

type Option func(*Options)

// WithLogger sets the logger components derive their sub-loggers from.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithValidator replaces the validator used by Options.Validate, e.g. to
// reuse one with custom tags registered.
func WithValidator(v *validator.Validate) Option {
	return func(o *Options) {
		if v != nil {
			o.validator = v
		}
	}
}

// NewOptions builds the configuration. With no options it logs nothing and
// uses a default validator.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		logger:    zerolog.Nop(),
		validator: _defaultValidator,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Logger returns the configured logger.
func (o *Options) Logger() zerolog.Logger {
	if o == nil {
		return zerolog.Nop()
	}

	return o.logger
}

// Resolver returns an ordering resolver logging through the configured logger.
func (o *Options) Resolver() *Resolver {
	return NewResolver(o.Logger())
}

// Linker returns a link builder rendering routes through router.
func (o *Options) Linker(router Router) *Linker {
	return NewLinker(router, o.Logger())
}

// Validate checks the `validate` tags of a request struct, typically a type
// embedding PageRequest.
func (o *Options) Validate(req any) error {
	v := _defaultValidator
	if o != nil && o.validator != nil {
		v = o.validator
	}

	if err := v.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPageRequest, err)
	}

	return nil
}
