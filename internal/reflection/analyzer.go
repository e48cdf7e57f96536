// Package reflection analyzes and invokes component constructors.
//
// A constructor candidate is any function value whose first return is
// assignable to the requested service type, optionally followed by an error.
// Selection follows the greatest-parameter-count policy: among the usable
// candidates the one with the most parameters wins, ties broken by the first
// encountered in the supplied order. Candidate order is the order of
// registration, so selection is deterministic across runs.
package reflection

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"strings"
)

// ErrConstructorNotFound indicates no usable constructor candidate exists for
// a service type. Wrapped by ConstructorNotFoundError.
var ErrConstructorNotFound = errors.New("no usable constructor")

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Constructor is a selected, analyzed constructor function.
type Constructor struct {
	// Func is the reflected function value.
	Func reflect.Value

	// Type is the function type of Func.
	Type reflect.Type

	// Params are the parameter types in declaration order. These are the
	// dependencies of the component the constructor produces.
	Params []reflect.Type

	// ReturnsErr reports whether the function has a trailing error return.
	ReturnsErr bool
}

// ConstructorNotFoundError indicates a service type exposes no usable
// constructor among its registered candidates.
type ConstructorNotFoundError struct {
	ServiceType reflect.Type
	Candidates  int
}

func (e ConstructorNotFoundError) Error() string {
	if e.Candidates == 0 {
		return fmt.Sprintf("%s has no constructor registered", FormatType(e.ServiceType))
	}
	return fmt.Sprintf("%s has no usable constructor among %d candidate(s); a constructor must be a non-variadic func returning the component, optionally with a trailing error",
		FormatType(e.ServiceType), e.Candidates)
}

func (e ConstructorNotFoundError) Is(target error) bool {
	return target == ErrConstructorNotFound
}

// PanicError captures a panic raised by a constructor during invocation.
type PanicError struct {
	Panic any
	Stack []byte
}

func (e *PanicError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "constructor panicked: %v", e.Panic)
	if len(e.Stack) > 0 {
		b.WriteString("\n")
		b.Write(e.Stack)
	}
	return b.String()
}

// Select picks the constructor for serviceType from the candidates, applying
// the greatest-parameter-count policy. It returns ConstructorNotFoundError
// when no candidate is usable.
func Select(serviceType reflect.Type, candidates []any) (*Constructor, error) {
	var best *Constructor
	for _, candidate := range candidates {
		ctor, ok := analyze(serviceType, candidate)
		if !ok {
			continue
		}
		// Strictly-greater keeps the first candidate on equal arity.
		if best == nil || len(ctor.Params) > len(best.Params) {
			best = ctor
		}
	}

	if best == nil {
		return nil, ConstructorNotFoundError{ServiceType: serviceType, Candidates: len(candidates)}
	}
	return best, nil
}

// analyze reports whether candidate is a usable constructor for serviceType.
func analyze(serviceType reflect.Type, candidate any) (*Constructor, bool) {
	if candidate == nil {
		return nil, false
	}

	fn := reflect.ValueOf(candidate)
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, false
	}

	fnType := fn.Type()
	if fnType.IsVariadic() {
		return nil, false
	}

	switch fnType.NumOut() {
	case 1:
		// func(...) T
	case 2:
		// func(...) (T, error)
		if fnType.Out(1) != errType {
			return nil, false
		}
	default:
		return nil, false
	}

	if !fnType.Out(0).AssignableTo(serviceType) {
		return nil, false
	}

	params := make([]reflect.Type, fnType.NumIn())
	for i := range params {
		params[i] = fnType.In(i)
	}

	return &Constructor{
		Func:       fn,
		Type:       fnType,
		Params:     params,
		ReturnsErr: fnType.NumOut() == 2,
	}, true
}

// Invoke calls the constructor with the resolved dependency values, in
// declaration order. A trailing error return or a panic inside the
// constructor is surfaced as the returned error.
func (c *Constructor) Invoke(args []reflect.Value) (out any, err error) {
	defer func() {
		if p := recover(); p != nil {
			out = nil
			err = &PanicError{Panic: p, Stack: debug.Stack()}
		}
	}()

	results := c.Func.Call(args)
	if c.ReturnsErr {
		if callErr, _ := results[1].Interface().(error); callErr != nil {
			return nil, callErr
		}
	}
	return results[0].Interface(), nil
}

// ArgValue converts a resolved dependency into a reflect.Value suitable for
// the given parameter type. A nil dependency becomes the parameter's zero
// value, so interface-typed parameters receive a typed nil rather than an
// invalid Value.
func ArgValue(paramType reflect.Type, v any) reflect.Value {
	if v == nil {
		return reflect.Zero(paramType)
	}
	return reflect.ValueOf(v)
}

// FormatType formats a reflect.Type for error messages, preferring short
// names over fully qualified ones for common shapes.
func FormatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "*" + elem.Name()
		}
		return t.String()
	case reflect.Slice:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "[]" + elem.Name()
		}
		return t.String()
	case reflect.Interface, reflect.Struct:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	default:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	}
}
