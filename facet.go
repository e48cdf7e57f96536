package facet

import "reflect"

// TypeOf returns the reflect.Type for T. It works for interface types,
// which cannot be named with reflect.TypeOf on a value:
//
//	registry.RegisterSingleton(facet.TypeOf[FieldConverter](), NewDateFieldConverter)
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterSingleton registers T with Singleton lifetime, satisfied by one of
// the candidate constructors.
func RegisterSingleton[T any](registry *Registry, ctors ...any) error {
	return registry.RegisterSingleton(TypeOf[T](), ctors...)
}

// RegisterTransient registers T with Transient lifetime, satisfied by one of
// the candidate constructors.
func RegisterTransient[T any](registry *Registry, ctors ...any) error {
	return registry.RegisterTransient(TypeOf[T](), ctors...)
}

// RegisterInstance registers a pre-built value for T. Resolution of T always
// returns exactly this value.
func RegisterInstance[T any](registry *Registry, instance T) error {
	return registry.RegisterInstance(TypeOf[T](), instance)
}

// Resolve resolves T from the locator and returns it statically typed.
func Resolve[T any](locator Locator) (T, error) {
	var zero T

	serviceType := TypeOf[T]()
	instance, err := locator.Get(serviceType)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, TypeMismatchError{Expected: serviceType, Actual: reflect.TypeOf(instance)}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure. Intended for
// application wiring code where a resolution failure is unrecoverable.
func MustResolve[T any](locator Locator) T {
	instance, err := Resolve[T](locator)
	if err != nil {
		panic(err)
	}
	return instance
}
