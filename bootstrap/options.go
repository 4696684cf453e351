package bootstrap

import (
	"github.com/kbukum/wirekit/logger"
	"github.com/kbukum/wirekit/registry"
)

// Option configures an initialization call.
type Option func(*options)

type options struct {
	registry *registry.Registry
	filter   *registry.Filter
	log      *logger.Logger
}

// WithRegistry uses a specific registry instead of the process default.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithFilter restricts initialization to declarations whose package path
// matches the filter.
func WithFilter(f *registry.Filter) Option {
	return func(o *options) { o.filter = f }
}

// WithLogger uses a specific logger instead of the global one.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

func resolveOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = registry.Default()
	}
	if o.log == nil {
		o.log = logger.GetGlobalLogger()
	}
	return o
}
