package scopology

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"reflect"
	"sync"
	"testing"
)

type baseScope struct {
	parent  Scope
	classes []string
}

func (s *baseScope) Parent() Scope {
	return s.parent
}

type derivedScope struct {
	baseScope
	name string
}

type deepScope struct {
	*derivedScope
	extra int
}

type taggedScope struct {
	parent   Scope
	entities []int `scope:"-"`
	loaded   []interface{} `scope:"registry"`
}

func (s *taggedScope) Parent() Scope {
	return s.parent
}

type namedScope struct {
	parent             Scope
	RegisteredEntities [2]string
}

func (s namedScope) Parent() Scope {
	return s.parent
}

type mapScope struct {
	parent   Scope
	registry map[string]interface{}
}

func (s *mapScope) Parent() Scope {
	return s.parent
}

type innerScope struct {
	entities []interface{}
}

type shadowingScope struct {
	innerScope
	parent   Scope
	registry *int
}

func (s *shadowingScope) Parent() Scope {
	return s.parent
}

type wrongTaggedScope struct {
	parent Scope
	loaded map[string]int `scope:"registry"`
}

func (s *wrongTaggedScope) Parent() Scope {
	return s.parent
}

type lockingScope struct {
	linkedScope
	mux     sync.RWMutex
	rLocked int
}

func (s *lockingScope) RLock() {
	s.mux.RLock()
	s.rLocked++
}

func (s *lockingScope) RUnlock() {
	s.mux.RUnlock()
}

func readAll(t *testing.T, scope Scope, opts ...Option) ([]interface{}, error) {
	visit, err := ReadRegistry(scope, opts...)
	if err != nil {
		return nil, err
	}
	var result []interface{}
	err = visit(func(index int, entity interface{}) (bool, error) {
		result = append(result, entity)
		return true, nil
	})
	require.NoError(t, err)
	return result, nil
}

func TestReadRegistry(t *testing.T) {
	var testCases = []struct {
		description string
		scope       Scope
		options     []Option
		expect      []interface{}
		expectErr   error
	}{
		{
			description: "private registry",
			scope:       &linkedScope{entities: []interface{}{"x", 1}},
			expect:      []interface{}{"x", 1},
		},
		{
			description: "registry declared by embedded struct",
			scope:       &derivedScope{baseScope: baseScope{classes: []string{"a", "b"}}},
			expect:      []interface{}{"a", "b"},
		},
		{
			description: "registry declared by embedded struct pointer",
			scope:       &deepScope{derivedScope: &derivedScope{baseScope: baseScope{classes: []string{"c"}}}},
			expect:      []interface{}{"c"},
		},
		{
			description: "nil embedded struct pointer",
			scope:       &deepScope{},
			expectErr:   ErrStructureMismatch,
		},
		{
			description: "tagged registry wins over name",
			scope:       &taggedScope{entities: []int{9}, loaded: []interface{}{"t"}},
			expect:      []interface{}{"t"},
		},
		{
			description: "case insensitive name on value scope with array registry",
			scope:       namedScope{RegisteredEntities: [2]string{"n1", "n2"}},
			options:     []Option{WithRegistryNames("registered_entities")},
			expect:      []interface{}{"n1", "n2"},
		},
		{
			description: "unordered registry storage",
			scope:       &mapScope{registry: map[string]interface{}{"a": 1}},
			expectErr:   ErrStructureMismatch,
		},
		{
			description: "name matched field of wrong kind does not hide embedded registry",
			scope:       &shadowingScope{innerScope: innerScope{entities: []interface{}{"a"}}},
			expect:      []interface{}{"a"},
		},
		{
			description: "tagged registry of wrong kind",
			scope:       &wrongTaggedScope{loaded: map[string]int{"a": 1}},
			expectErr:   ErrStructureMismatch,
		},
		{
			description: "custom names without match",
			scope:       &linkedScope{entities: []interface{}{"x"}},
			options:     []Option{WithRegistryNames("loaded")},
			expectErr:   ErrStructureMismatch,
		},
		{
			description: "exported only policy",
			scope:       &linkedScope{entities: []interface{}{"x"}},
			options:     []Option{WithAccessPolicy(ExportedOnly)},
			expectErr:   ErrAccessDenied,
		},
		{
			description: "allowed declaring type",
			scope:       &derivedScope{baseScope: baseScope{classes: []string{"a"}}},
			options:     []Option{WithAccessPolicy(AllowTypes(reflect.TypeOf(&baseScope{})))},
			expect:      []interface{}{"a"},
		},
		{
			description: "disallowed declaring type",
			scope:       &derivedScope{baseScope: baseScope{classes: []string{"a"}}},
			options:     []Option{WithAccessPolicy(AllowTypes(reflect.TypeOf(derivedScope{})))},
			expectErr:   ErrAccessDenied,
		},
	}
	for _, testCase := range testCases {
		actual, err := readAll(t, testCase.scope, testCase.options...)
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestReadRegistry_FieldPath(t *testing.T) {
	_, err := readAll(t, &deepScope{}, WithAccessPolicy(DenyAll))
	var readErr *Error
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "derivedScope.baseScope.classes", readErr.Field)
}

func TestReadRegistry_Snapshot(t *testing.T) {
	scope := &lockingScope{linkedScope: linkedScope{entities: []interface{}{"a"}}}
	visit, err := ReadRegistry(scope)
	require.NoError(t, err)
	assert.Equal(t, 1, scope.rLocked)
	scope.entities = append(scope.entities, "b")
	scope.entities[0] = "changed"

	var visited []interface{}
	err = visit(func(index int, entity interface{}) (bool, error) {
		visited = append(visited, entity)
		return true, nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, []interface{}{"a"}, visited)

	err = visit(func(index int, entity interface{}) (bool, error) {
		return true, nil
	})
	assert.True(t, errors.Is(err, ErrConsumed))
}

func TestReadRegistry_NilScope(t *testing.T) {
	_, err := ReadRegistry(nil)
	assert.True(t, errors.Is(err, ErrStructureMismatch))
}

func TestAllowTypes_NilType(t *testing.T) {
	policy := AllowTypes(nil, reflect.TypeOf(baseScope{}))
	assert.Nil(t, policy(reflect.TypeOf(baseScope{}), reflect.StructField{Name: "classes"}))
	assert.NotNil(t, policy(reflect.TypeOf(linkedScope{}), reflect.StructField{Name: "entities"}))
}
