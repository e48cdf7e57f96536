// Package chi provides facet integration for the Chi router.
//
// This package provides middleware for attaching a container to the request
// context and type-safe handler wrappers for resolving controllers.
//
// Example usage:
//
//	registry := facet.New()
//	// ... register components ...
//
//	r := chi.NewRouter()
//	r.Use(facetchi.Middleware(registry))
//
//	r.Get("/search", facetchi.Handle((*SearchController).Query))
package chi

import (
	"log/slog"
	"net/http"

	"github.com/searchmap/facet"
)

// Config holds the configuration for the container middleware.
type Config struct {
	// Middlewares are functions that run after the locator is attached.
	// They can be used to initialize request state before handlers run.
	Middlewares []func(facet.Locator, *http.Request) error

	// ErrorHandler is called when a per-request middleware fails.
	// If nil, a default handler returning 500 Internal Server Error is used.
	ErrorHandler func(http.ResponseWriter, *http.Request, error)
}

// Option configures the container middleware.
type Option func(*Config)

// WithMiddleware adds a function that runs after the locator is attached.
// Multiple middlewares are executed in the order they are added.
func WithMiddleware(mw func(facet.Locator, *http.Request) error) Option {
	return func(c *Config) {
		c.Middlewares = append(c.Middlewares, mw)
	}
}

// WithErrorHandler sets the error handler for middleware failures.
func WithErrorHandler(h func(http.ResponseWriter, *http.Request, error)) Option {
	return func(c *Config) {
		c.ErrorHandler = h
	}
}

func defaultConfig() *Config {
	return &Config{
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("request middleware failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
	}
}

// Middleware creates a Chi middleware that attaches the locator to each
// request context. Handlers retrieve it with facet.FromContext or resolve
// controllers through Handle.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(facetchi.Middleware(registry))
func Middleware(locator facet.Locator, opts ...Option) func(http.Handler) http.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = r.WithContext(facet.NewContext(r.Context(), locator))

			for _, mw := range cfg.Middlewares {
				if err := mw(locator, r); err != nil {
					cfg.ErrorHandler(w, r, err)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// HandlerConfig holds configuration for the Handle wrapper.
type HandlerConfig struct {
	// LocatorErrorHandler is called when no locator is attached to the
	// request context.
	LocatorErrorHandler func(http.ResponseWriter, *http.Request, error)

	// ResolutionErrorHandler is called when controller resolution fails.
	ResolutionErrorHandler func(http.ResponseWriter, *http.Request, error)
}

// HandlerOption configures the Handle wrapper.
type HandlerOption func(*HandlerConfig)

// WithLocatorErrorHandler sets the error handler for a missing locator.
func WithLocatorErrorHandler(h func(http.ResponseWriter, *http.Request, error)) HandlerOption {
	return func(c *HandlerConfig) {
		c.LocatorErrorHandler = h
	}
}

// WithResolutionErrorHandler sets the error handler for controller
// resolution failures.
func WithResolutionErrorHandler(h func(http.ResponseWriter, *http.Request, error)) HandlerOption {
	return func(c *HandlerConfig) {
		c.ResolutionErrorHandler = h
	}
}

func defaultHandlerConfig() *HandlerConfig {
	return &HandlerConfig{
		LocatorErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("no locator on request context", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		ResolutionErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("failed to resolve controller", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
	}
}

// Handle wraps a controller method for type-safe resolution from the request
// context. The controller type T is resolved from the locator attached by
// Middleware.
//
// The method signature should be: func(T, http.ResponseWriter, *http.Request)
//
// Example:
//
//	r.Get("/search", facetchi.Handle((*SearchController).Query))
func Handle[T any](method func(T, http.ResponseWriter, *http.Request), opts ...HandlerOption) http.HandlerFunc {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		locator, err := facet.FromContext(r.Context())
		if err != nil {
			cfg.LocatorErrorHandler(w, r, err)
			return
		}

		controller, err := facet.Resolve[T](locator)
		if err != nil {
			cfg.ResolutionErrorHandler(w, r, err)
			return
		}

		method(controller, w, r)
	}
}
