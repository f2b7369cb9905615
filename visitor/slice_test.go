package visitor

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewSliceVisitor(t *testing.T) {
	mySlice := []interface{}{"a", 1, 3.14, true}
	visit := SliceVisitorOf[any](mySlice)
	clone := []interface{}{}
	err := visit(func(index int, element interface{}) (bool, error) {
		clone = append(clone, element)
		return true, nil // continue iteration
	})
	assert.NoError(t, err)
	assert.EqualValues(t, mySlice, clone)
}

func TestSliceVisitor_Stop(t *testing.T) {
	visit := SliceVisitorOf[string]([]string{"x", "y", "z"})
	var visited []string
	err := visit(func(index int, element string) (bool, error) {
		visited = append(visited, element)
		return index < 1, nil
	})
	assert.NoError(t, err)
	assert.EqualValues(t, []string{"x", "y"}, visited)

	failure := errors.New("boom")
	visited = nil
	err = visit(func(index int, element string) (bool, error) {
		visited = append(visited, element)
		return true, failure
	})
	assert.Same(t, failure, err)
	assert.EqualValues(t, []string{"x"}, visited)
}

func TestCopy(t *testing.T) {
	type entity struct{ Name string }
	var testCases = []struct {
		description string
		input       interface{}
		expect      []interface{}
		hasError    bool
	}{
		{description: "nil", input: nil, expect: nil},
		{description: "interface slice", input: []interface{}{1, "a"}, expect: []interface{}{1, "a"}},
		{description: "string slice", input: []string{"a", "b"}, expect: []interface{}{"a", "b"}},
		{description: "struct pointer slice", input: []*entity{{Name: "x"}}, expect: []interface{}{&entity{Name: "x"}}},
		{description: "array", input: [2]int{4, 5}, expect: []interface{}{4, 5}},
		{description: "nil typed slice", input: []*entity(nil), expect: nil},
		{description: "map", input: map[string]int{"a": 1}, hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := Copy(testCase.input)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestCopy_Detached(t *testing.T) {
	source := []interface{}{"a", "b"}
	snapshot, err := Copy(source)
	assert.Nil(t, err)
	source[0] = "changed"
	source = append(source, "c")
	assert.EqualValues(t, []interface{}{"a", "b"}, snapshot)
}
