package facet

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/searchmap/facet/internal/reflection"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// These are base errors matched via errors.Is. The typed errors below carry
// the diagnostic context; never return the sentinels bare from the container.

var (
	// Registration errors.
	ErrServiceTypeNil    = errors.New("service type cannot be nil")
	ErrNilInstance       = errors.New("instance cannot be nil")
	ErrNilRegistry       = errors.New("registry cannot be nil")
	ErrAlreadyRegistered = errors.New("component already registered")

	// Resolution errors.
	ErrNotRegistered         = errors.New("component not registered")
	ErrCircularDependency    = errors.New("circular dependency detected")
	ErrDependencyResolution  = errors.New("dependency resolution failed")
	ErrConstructorInvocation = errors.New("constructor invocation failed")
)

// ErrConstructorNotFound indicates a component exposes no usable constructor.
var ErrConstructorNotFound = reflection.ErrConstructorNotFound

// ConstructorNotFoundError is produced when none of a registration's
// constructor candidates is usable. Defined in the reflection package where
// candidate analysis lives; aliased here so callers only import facet.
type ConstructorNotFoundError = reflection.ConstructorNotFoundError

var (
	_ error = LifetimeError{}
	_ error = NotRegisteredError{}
	_ error = AlreadyRegisteredError{}
	_ error = CircularDependencyError{}
	_ error = DependencyResolutionError{}
	_ error = ConstructorInvocationError{}
	_ error = TypeMismatchError{}
)

// ========================================
// Typed Errors for Rich Context
// ========================================

// LifetimeError indicates an invalid lifetime value.
type LifetimeError struct {
	Value any
}

func (e LifetimeError) Error() string {
	return fmt.Sprintf("invalid lifetime: %v", e.Value)
}

// NotRegisteredError indicates the requested type has no registration.
// Lookup is by exact type identity; an implementation registered under a
// different interface does not satisfy the request.
type NotRegisteredError struct {
	ServiceType reflect.Type
}

func (e NotRegisteredError) Error() string {
	return fmt.Sprintf("component not registered: %s", formatType(e.ServiceType))
}

func (e NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

// AlreadyRegisteredError indicates a duplicate registration for a type. The
// first registration stays active; there is no unregister operation.
type AlreadyRegisteredError struct {
	ServiceType reflect.Type
}

func (e AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("component already registered: %s", formatType(e.ServiceType))
}

func (e AlreadyRegisteredError) Is(target error) bool {
	return target == ErrAlreadyRegistered
}

// CircularDependencyError indicates a component transitively depends on
// itself. ServiceType is the component whose resolution was re-entered;
// Path is the in-flight resolution chain, in order, from the outermost
// request down to the dependency that closed the cycle.
type CircularDependencyError struct {
	ServiceType reflect.Type
	Path        []reflect.Type
}

// Dependency returns the component whose dependency closed the cycle. For a
// self-referential component this is the component itself.
func (e CircularDependencyError) Dependency() reflect.Type {
	if len(e.Path) == 0 {
		return e.ServiceType
	}
	return e.Path[len(e.Path)-1]
}

func (e CircularDependencyError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("circular dependency detected: %s", formatType(e.ServiceType)))
	if len(e.Path) > 0 {
		b.WriteString(" via ")
		for i, t := range e.Path {
			if i > 0 {
				b.WriteString(" -> ")
			}
			b.WriteString(formatType(t))
		}
		b.WriteString(" -> ")
		b.WriteString(formatType(e.ServiceType))
	}
	return b.String()
}

func (e CircularDependencyError) Is(target error) bool {
	return target == ErrCircularDependency
}

// DependencyResolutionError indicates a component could not be constructed
// because one of its constructor dependencies failed to resolve. The
// underlying failure is preserved as the wrapped cause; use RootCause to
// reach the innermost originating error.
type DependencyResolutionError struct {
	ServiceType reflect.Type
	Dependency  reflect.Type
	Cause       error
}

func (e DependencyResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s: dependency %s failed:\n%s",
		formatType(e.ServiceType), formatType(e.Dependency), indent(e.Cause.Error()))
}

func (e DependencyResolutionError) Unwrap() error {
	return e.Cause
}

func (e DependencyResolutionError) Is(target error) bool {
	return target == ErrDependencyResolution
}

// ConstructorInvocationError indicates a selected constructor was invoked
// and failed, either by returning a non-nil trailing error or by panicking.
type ConstructorInvocationError struct {
	ServiceType reflect.Type
	Cause       error
}

func (e ConstructorInvocationError) Error() string {
	return fmt.Sprintf("constructing %s: %v", formatType(e.ServiceType), e.Cause)
}

func (e ConstructorInvocationError) Unwrap() error {
	return e.Cause
}

func (e ConstructorInvocationError) Is(target error) bool {
	return target == ErrConstructorInvocation
}

// TypeMismatchError indicates a resolved value did not have the statically
// expected type. This only happens when an Instance registration was made
// under a type its value does not satisfy.
type TypeMismatchError struct {
	Expected reflect.Type
	Actual   reflect.Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("resolved component type mismatch: expected %s, got %s",
		formatType(e.Expected), formatType(e.Actual))
}

// RootCause unwraps nested DependencyResolutionError wrappers and returns
// the innermost originating error. For a failure that happened directly on
// the requested type, RootCause returns the error unchanged. The result is
// structured: errors.Is and errors.As work on it as usual.
func RootCause(err error) error {
	for {
		switch wrapper := err.(type) {
		case DependencyResolutionError:
			err = wrapper.Cause
		case *DependencyResolutionError:
			err = wrapper.Cause
		default:
			return err
		}
	}
}

// indent prefixes every line of s with two spaces, keeping nested error
// messages readable when dependency failures stack up.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}

// formatType formats a reflect.Type for error messages.
func formatType(t reflect.Type) string {
	return reflection.FormatType(t)
}
