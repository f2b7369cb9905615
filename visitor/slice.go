package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitor implements Visitor[int, E] for []E
type SliceVisitor[E any] struct {
	data []E
}

// SliceVisitorOf creates a Visitor for supplied slice
func SliceVisitorOf[E any](slice []E) Visitor[int, E] {
	visitor := &SliceVisitor[E]{data: slice}
	return visitor.Visit
}

// Visit iterates over the slice, calling the provided function for each element.
// The key is the slice index.
func (sw *SliceVisitor[E]) Visit(f func(key int, element E) (bool, error)) error {
	for i, elem := range sw.data {
		continueVisit, err := f(i, elem)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// Copy returns a detached copy of any slice or array value elements
func Copy(value interface{}) ([]interface{}, error) {
	switch actual := value.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		if actual == nil {
			return nil, nil
		}
		result := make([]interface{}, len(actual))
		copy(result, actual)
		return result, nil
	}
	val := reflect.ValueOf(value)
	return CopyValue(val)
}

// CopyValue returns a detached copy of slice or array reflect value elements
func CopyValue(val reflect.Value) ([]interface{}, error) {
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %v", val.Type())
	}
	if val.Kind() == reflect.Slice && val.IsNil() {
		return nil, nil
	}
	length := val.Len()
	result := make([]interface{}, length)
	for i := 0; i < length; i++ {
		result[i] = val.Index(i).Interface()
	}
	return result, nil
}
