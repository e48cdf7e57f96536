package facet

import (
	"reflect"
	"time"
)

// registryOptions holds Registry configuration.
type registryOptions struct {
	onResolved func(serviceType reflect.Type, duration time.Duration)
	onError    func(serviceType reflect.Type, err error)
}

// Option configures a Registry.
type Option interface {
	apply(*registryOptions)
}

// optionFunc adapts a function to Option.
type optionFunc func(*registryOptions)

func (f optionFunc) apply(opts *registryOptions) {
	f(opts)
}

// WithResolveCallback registers a hook invoked after every successful
// top-level Get with the requested type and the wall-clock resolution time.
// Useful for wiring metrics or tracing around container lookups.
func WithResolveCallback(fn func(serviceType reflect.Type, duration time.Duration)) Option {
	return optionFunc(func(opts *registryOptions) {
		opts.onResolved = fn
	})
}

// WithErrorCallback registers a hook invoked when a top-level Get fails.
// The error is still returned to the caller; the hook observes, it does not
// recover.
func WithErrorCallback(fn func(serviceType reflect.Type, err error)) Option {
	return optionFunc(func(opts *registryOptions) {
		opts.onError = fn
	})
}
