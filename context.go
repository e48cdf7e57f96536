package facet

import (
	"context"
	"errors"
)

// ErrNoLocatorInContext indicates the context carries no Locator.
var ErrNoLocatorInContext = errors.New("no locator attached to context")

// locatorContextKey is the private context key for attached locators.
type locatorContextKey struct{}

// NewContext returns a copy of ctx carrying the locator, for handlers and
// middleware that pass the container through request contexts.
func NewContext(ctx context.Context, locator Locator) context.Context {
	return context.WithValue(ctx, locatorContextKey{}, locator)
}

// FromContext retrieves the Locator attached to ctx, failing with
// ErrNoLocatorInContext when none was attached.
func FromContext(ctx context.Context) (Locator, error) {
	locator, ok := ctx.Value(locatorContextKey{}).(Locator)
	if !ok {
		return nil, ErrNoLocatorInContext
	}
	return locator, nil
}
