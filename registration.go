package facet

import (
	"reflect"
	"sync"

	"github.com/searchmap/facet/internal/reflection"
)

// registration describes how a requested type is satisfied. Records are
// created once at registration time and are immutable afterwards; there is
// no unregister operation. Callers never see registrations directly.
type registration struct {
	// serviceType is the exact lookup key on the registry.
	serviceType reflect.Type

	// lifetime governs instance reuse.
	lifetime Lifetime

	// instance holds the pre-built value for Instance registrations.
	instance any

	// constructors are the candidate constructor functions, in the order
	// they were supplied. Analyzed lazily: constructibility is checked at
	// resolution time, not at registration time.
	constructors []any

	// Constructor selection is performed once and cached. sync.Once keeps
	// the selection deterministic under concurrent first resolutions.
	ctorOnce sync.Once
	ctor     *reflection.Constructor
	ctorErr  error
}

// constructor returns the selected constructor for this registration,
// applying the greatest-parameter-count policy on first use.
func (reg *registration) constructor() (*reflection.Constructor, error) {
	reg.ctorOnce.Do(func() {
		reg.ctor, reg.ctorErr = reflection.Select(reg.serviceType, reg.constructors)
	})
	return reg.ctor, reg.ctorErr
}
