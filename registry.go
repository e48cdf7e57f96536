package facet

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry is the component container. It owns the mapping from requested
// type to registration and the cache of realized singleton instances.
//
// Registries are independent: no global state is shared between them, so
// tests and embedded uses can run any number of containers side by side.
// Registration is expected during single-threaded application setup;
// resolution is safe for concurrent use.
type Registry struct {
	id string

	mu            sync.RWMutex
	registrations map[reflect.Type]*registration

	singletonsMu sync.Mutex
	singletons   map[reflect.Type]any

	options registryOptions
}

var _ Locator = (*Registry)(nil)

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		id:            uuid.NewString(),
		registrations: make(map[reflect.Type]*registration),
		singletons:    make(map[reflect.Type]any),
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&r.options)
		}
	}
	return r
}

// ID returns the unique identifier of this registry instance.
func (r *Registry) ID() string {
	return r.id
}

// String implements fmt.Stringer for diagnostics.
func (r *Registry) String() string {
	r.mu.RLock()
	n := len(r.registrations)
	r.mu.RUnlock()
	return fmt.Sprintf("facet.Registry(%s, %d components)", r.id, n)
}

// RegisterSingleton registers serviceType to be satisfied by constructing an
// instance once, on first resolution, from one of the candidate constructors.
// Later resolutions return the cached instance.
//
// Constructibility of the candidates is checked lazily at resolution time.
// Registering a type that already has a registration fails with
// AlreadyRegisteredError, regardless of lifetime combination.
func (r *Registry) RegisterSingleton(serviceType reflect.Type, ctors ...any) error {
	return r.register(&registration{
		serviceType:  serviceType,
		lifetime:     Singleton,
		constructors: ctors,
	})
}

// RegisterTransient registers serviceType to be satisfied by constructing a
// fresh instance, with freshly resolved dependencies, on every resolution.
func (r *Registry) RegisterTransient(serviceType reflect.Type, ctors ...any) error {
	return r.register(&registration{
		serviceType:  serviceType,
		lifetime:     Transient,
		constructors: ctors,
	})
}

// RegisterInstance registers a pre-built value. Resolution of serviceType
// always returns exactly this value; no construction is ever attempted.
func (r *Registry) RegisterInstance(serviceType reflect.Type, instance any) error {
	if instance == nil {
		return ErrNilInstance
	}
	return r.register(&registration{
		serviceType: serviceType,
		lifetime:    Instance,
		instance:    instance,
	})
}

func (r *Registry) register(reg *registration) error {
	if reg.serviceType == nil {
		return ErrServiceTypeNil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.registrations[reg.serviceType]; exists {
		return AlreadyRegisteredError{ServiceType: reg.serviceType}
	}
	r.registrations[reg.serviceType] = reg
	return nil
}

// Get resolves and returns an instance satisfying serviceType, constructing
// and wiring its dependency graph depth-first as needed. Lookup is by exact
// type identity; there is no structural or covariant matching.
func (r *Registry) Get(serviceType reflect.Type) (any, error) {
	start := time.Now()

	instance, err := r.resolveType(serviceType, newResolutionContext())
	if err != nil {
		if r.options.onError != nil {
			r.options.onError(serviceType, err)
		}
		return nil, err
	}

	if r.options.onResolved != nil {
		r.options.onResolved(serviceType, time.Since(start))
	}
	return instance, nil
}

// lookup returns the registration for serviceType, if any.
func (r *Registry) lookup(serviceType reflect.Type) (*registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.registrations[serviceType]
	return reg, ok
}

// cachedSingleton returns the completed singleton instance for serviceType,
// if one has been stored.
func (r *Registry) cachedSingleton(serviceType reflect.Type) (any, bool) {
	r.singletonsMu.Lock()
	defer r.singletonsMu.Unlock()
	instance, ok := r.singletons[serviceType]
	return instance, ok
}

// storeSingleton caches a completed construction. First completed
// construction wins: if another resolution stored an instance while this one
// was constructing, the already-cached instance is returned and the fresh
// one discarded, so at most one instance is ever cached per singleton type.
func (r *Registry) storeSingleton(serviceType reflect.Type, instance any) any {
	r.singletonsMu.Lock()
	defer r.singletonsMu.Unlock()
	if existing, ok := r.singletons[serviceType]; ok {
		return existing
	}
	r.singletons[serviceType] = instance
	return instance
}
