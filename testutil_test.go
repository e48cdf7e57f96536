package facet_test

import (
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/searchmap/facet"
)

// ============================================================================
// Shared Test Components
// ============================================================================
// Fixtures model a miniature mapping stack: a schema leaf, an index client,
// a converter set, and a document mapper forming a diamond over the schema.

// indexSchema is a leaf component with no dependencies.
type indexSchema struct {
	Core string
}

func newIndexSchema() *indexSchema {
	return &indexSchema{Core: "documents"}
}

// indexClient depends on the schema.
type indexClient struct {
	Schema *indexSchema
}

func newIndexClient(schema *indexSchema) *indexClient {
	return &indexClient{Schema: schema}
}

// converterSet depends on the schema.
type converterSet struct {
	Schema *indexSchema
}

func newConverterSet(schema *indexSchema) *converterSet {
	return &converterSet{Schema: schema}
}

// documentMapper closes the diamond: both of its dependencies share the
// schema leaf.
type documentMapper struct {
	Converters *converterSet
	Client     *indexClient
}

func newDocumentMapper(converters *converterSet, client *indexClient) *documentMapper {
	return &documentMapper{Converters: converters, Client: client}
}

// queryTranslator tracks construction counts for lifetime tests.
type queryTranslator struct {
	Instance int64
}

// countingTranslatorCtor returns a constructor that bumps counter on every
// invocation.
func countingTranslatorCtor(counter *atomic.Int64) func() *queryTranslator {
	return func() *queryTranslator {
		return &queryTranslator{Instance: counter.Add(1)}
	}
}

// fieldConverter is an interface component.
type fieldConverter interface {
	FieldType() string
}

type dateFieldConverter struct{}

func (dateFieldConverter) FieldType() string { return "date" }

func newDateFieldConverter() *dateFieldConverter {
	return &dateFieldConverter{}
}

// ============================================================================
// Cycle Test Components
// ============================================================================

// selfRefMapper depends on itself: a 1-node cycle.
type selfRefMapper struct {
	Self *selfRefMapper
}

func newSelfRefMapper(self *selfRefMapper) *selfRefMapper {
	return &selfRefMapper{Self: self}
}

// cycleA -> cycleB -> cycleC -> cycleA: a 3-node cycle.
type cycleA struct{ B *cycleB }
type cycleB struct{ C *cycleC }
type cycleC struct{ A *cycleA }

func newCycleA(b *cycleB) *cycleA { return &cycleA{B: b} }
func newCycleB(c *cycleC) *cycleB { return &cycleB{C: c} }
func newCycleC(a *cycleA) *cycleC { return &cycleC{A: a} }

// ============================================================================
// Test Helpers
// ============================================================================

// buildMappingStack registers the diamond fixtures as singletons.
func buildMappingStack(t *testing.T, registry *facet.Registry) {
	t.Helper()
	require.NoError(t, facet.RegisterSingleton[*indexSchema](registry, newIndexSchema))
	require.NoError(t, facet.RegisterSingleton[*indexClient](registry, newIndexClient))
	require.NoError(t, facet.RegisterSingleton[*converterSet](registry, newConverterSet))
	require.NoError(t, facet.RegisterSingleton[*documentMapper](registry, newDocumentMapper))
}

// requireResolve resolves a component or fails the test.
func requireResolve[T any](t *testing.T, locator facet.Locator) T {
	t.Helper()
	v, err := facet.Resolve[T](locator)
	require.NoError(t, err)
	return v
}

// typeOf mirrors facet.TypeOf for assertions on reflect.Type values.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
