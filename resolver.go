package facet

import (
	"reflect"

	"github.com/searchmap/facet/internal/reflection"
)

// resolutionContext tracks the types currently being constructed along one
// resolution call path. A context exists only for the duration of a single
// top-level Get and its recursive sub-resolutions; it is never shared
// between Get calls, so independent resolutions cannot interfere with each
// other's cycle detection.
//
// Insertion order is kept so circular dependency diagnostics show the path
// from the outermost request down to the dependency that closed the cycle.
type resolutionContext struct {
	stack    []reflect.Type
	inFlight map[reflect.Type]*registration
}

func newResolutionContext() *resolutionContext {
	return &resolutionContext{
		inFlight: make(map[reflect.Type]*registration),
	}
}

func (c *resolutionContext) has(serviceType reflect.Type) bool {
	_, ok := c.inFlight[serviceType]
	return ok
}

func (c *resolutionContext) push(serviceType reflect.Type, reg *registration) {
	c.stack = append(c.stack, serviceType)
	c.inFlight[serviceType] = reg
}

func (c *resolutionContext) pop() {
	last := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	delete(c.inFlight, last)
}

// path returns a copy of the in-flight chain, outermost request first.
func (c *resolutionContext) path() []reflect.Type {
	path := make([]reflect.Type, len(c.stack))
	copy(path, c.stack)
	return path
}

// resolveType is the recursive resolution algorithm. Dependencies are
// resolved eagerly, depth-first, left-to-right in constructor declaration
// order, which keeps object graphs reproducible and cycle diagnostics
// stable.
func (r *Registry) resolveType(serviceType reflect.Type, ctx *resolutionContext) (any, error) {
	if serviceType == nil {
		return nil, ErrServiceTypeNil
	}

	reg, ok := r.lookup(serviceType)
	if !ok {
		return nil, NotRegisteredError{ServiceType: serviceType}
	}

	switch reg.lifetime {
	case Instance:
		// Pre-built value: no dependency walk, no cycle tracking needed.
		return reg.instance, nil
	case Singleton:
		if instance, ok := r.cachedSingleton(serviceType); ok {
			return instance, nil
		}
	}

	return r.construct(serviceType, reg, ctx)
}

// construct builds a new instance for reg. The in-progress resolution never
// populates the singleton cache; only a completed construction does, so a
// re-entrant lookup of the same type is rejected as a cycle rather than
// served a half-built instance.
func (r *Registry) construct(serviceType reflect.Type, reg *registration, ctx *resolutionContext) (any, error) {
	ctor, err := reg.constructor()
	if err != nil {
		return nil, err
	}

	if ctx.has(serviceType) {
		return nil, CircularDependencyError{ServiceType: serviceType, Path: ctx.path()}
	}
	ctx.push(serviceType, reg)
	defer ctx.pop()

	args := make([]reflect.Value, len(ctor.Params))
	for i, dep := range ctor.Params {
		value, err := r.resolveType(dep, ctx)
		if err != nil {
			return nil, DependencyResolutionError{
				ServiceType: serviceType,
				Dependency:  dep,
				Cause:       err,
			}
		}
		args[i] = reflection.ArgValue(dep, value)
	}

	instance, err := ctor.Invoke(args)
	if err != nil {
		return nil, ConstructorInvocationError{ServiceType: serviceType, Cause: err}
	}

	if reg.lifetime == Singleton {
		return r.storeSingleton(serviceType, instance), nil
	}
	return instance, nil
}
