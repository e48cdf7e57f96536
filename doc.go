// Package facet provides the component container that wires the searchmap
// mapping stack together: document mappers, per-type field converters, query
// translators, and the index client are all plain components registered
// against a Registry and resolved by constructor injection.
//
// # Overview
//
// The container is deliberately small. It supports:
//   - Three lifetimes: Singleton, Transient, and Instance
//   - Constructor injection with depth-first, declaration-order resolution
//   - Circular dependency detection at resolution time
//   - A structured error taxonomy with root-cause propagation
//   - A service-locator facade for components that need ambient lookup
//   - Eager graph checking with Validate, for setup-time verification
//
// # Basic Usage
//
// Create a registry, register components during application setup, then
// resolve fully wired instances:
//
//	registry := facet.New()
//	facet.RegisterSingleton[*ConverterRegistry](registry, NewConverterRegistry)
//	facet.RegisterSingleton[*DocumentMapper](registry, NewDocumentMapper)
//	facet.RegisterTransient[*QueryTranslator](registry, NewQueryTranslator)
//
//	mapper, err := facet.Resolve[*DocumentMapper](registry)
//
// # Constructors
//
// Components declare their dependencies through constructor parameters:
//
//	func NewDocumentMapper(converters *ConverterRegistry) *DocumentMapper {
//	    return &DocumentMapper{converters: converters}
//	}
//
// A constructor is a function returning the component, optionally with a
// trailing error. Several candidate constructors may be supplied for one
// component; resolution uses the candidate with the greatest parameter count,
// ties broken by the order the candidates were supplied.
//
// # Lifetimes
//
//   - Singleton: constructed once on first resolution, then cached
//   - Transient: constructed fresh on every resolution
//   - Instance: a pre-built value registered as-is, never constructed
//
// # Service Locator
//
// Components that need ambient lookup can declare a Locator dependency. The
// ServiceLocator facade registers itself into the registry it wraps:
//
//	locator, err := facet.NewServiceLocator(registry)
//
//	func NewFieldSerializer(loc facet.Locator) *FieldSerializer {
//	    // loc is the same ServiceLocator instance
//	}
//
// # Error Handling
//
// Every failure surfaces synchronously as a typed error:
//   - NotRegisteredError: no registration for the requested type
//   - AlreadyRegisteredError: duplicate registration for a type
//   - ConstructorNotFoundError: no usable constructor candidate
//   - CircularDependencyError: a component transitively depends on itself
//   - DependencyResolutionError: a dependency failed; wraps the cause
//   - ConstructorInvocationError: a constructor returned an error or panicked
//
// Use RootCause to unwrap nested dependency failures to the originating
// error, and errors.Is with the Err* sentinels to branch on the kind.
//
// # Thread Safety
//
// Registration is expected to happen during single-threaded application
// setup. Resolution is safe for concurrent use: each Get call owns its own
// resolution state, and the singleton cache guarantees at most one cached
// instance per type even when first resolutions race.
package facet
