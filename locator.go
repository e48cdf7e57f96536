package facet

import "reflect"

// Locator is the ambient lookup contract. It is satisfied by *Registry and
// by *ServiceLocator, so resolution helpers accept either.
type Locator interface {
	// Get resolves and returns an instance satisfying serviceType.
	Get(serviceType reflect.Type) (any, error)
}

// ServiceLocator is a thin facade over one Registry. On construction it
// registers itself as the Instance-lifetime implementation of Locator, so
// any component in the graph may declare a Locator constructor parameter
// and receive this same facade.
//
// Prefer plain constructor injection; reach for the locator only in
// components that genuinely need ambient lookup, such as converter
// registries that dispatch on runtime types.
type ServiceLocator struct {
	registry *Registry
}

var _ Locator = (*ServiceLocator)(nil)

// NewServiceLocator wraps registry and self-registers under the Locator
// interface type. It fails with AlreadyRegisteredError if the registry
// already has a Locator registration, for example from a previous facade.
func NewServiceLocator(registry *Registry) (*ServiceLocator, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	locator := &ServiceLocator{registry: registry}
	if err := registry.RegisterInstance(TypeOf[Locator](), locator); err != nil {
		return nil, err
	}
	return locator, nil
}

// Get passes the request through to the wrapped registry.
func (l *ServiceLocator) Get(serviceType reflect.Type) (any, error) {
	return l.registry.Get(serviceType)
}

// Registry returns the wrapped registry.
func (l *ServiceLocator) Registry() *Registry {
	return l.registry
}
