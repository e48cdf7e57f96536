package facet

import (
	"reflect"
	"sort"
)

// Validate checks every registration without constructing anything: each
// Singleton and Transient registration must have a usable constructor, every
// constructor parameter must itself be registered, and the graph must be free
// of cycles. The first problem found is returned, in the same error shapes
// resolution would produce.
//
// Validate never invokes a constructor, so failures that only happen at
// construction time (a constructor returning an error or panicking) are not
// detected here.
func (r *Registry) Validate() error {
	r.mu.RLock()
	types := make([]reflect.Type, 0, len(r.registrations))
	regs := make(map[reflect.Type]*registration, len(r.registrations))
	for serviceType, reg := range r.registrations {
		types = append(types, serviceType)
		regs[serviceType] = reg
	}
	r.mu.RUnlock()

	// Deterministic walk order regardless of map iteration.
	sort.Slice(types, func(i, j int) bool {
		return formatType(types[i]) < formatType(types[j])
	})

	v := &validator{regs: regs, verified: make(map[reflect.Type]bool)}
	for _, serviceType := range types {
		if err := v.check(serviceType, newResolutionContext()); err != nil {
			return err
		}
	}
	return nil
}

// validator walks the registration graph the way the resolver would,
// memoizing types whose subtree has already been verified.
type validator struct {
	regs     map[reflect.Type]*registration
	verified map[reflect.Type]bool
}

func (v *validator) check(serviceType reflect.Type, ctx *resolutionContext) error {
	if v.verified[serviceType] {
		return nil
	}

	reg, ok := v.regs[serviceType]
	if !ok {
		return NotRegisteredError{ServiceType: serviceType}
	}

	if reg.lifetime == Instance {
		v.verified[serviceType] = true
		return nil
	}

	ctor, err := reg.constructor()
	if err != nil {
		return err
	}

	if ctx.has(serviceType) {
		return CircularDependencyError{ServiceType: serviceType, Path: ctx.path()}
	}
	ctx.push(serviceType, reg)
	defer ctx.pop()

	for _, dep := range ctor.Params {
		if err := v.check(dep, ctx); err != nil {
			return DependencyResolutionError{
				ServiceType: serviceType,
				Dependency:  dep,
				Cause:       err,
			}
		}
	}

	v.verified[serviceType] = true
	return nil
}
