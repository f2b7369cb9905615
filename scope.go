package scopology

import (
	"fmt"
	"reflect"
)

type (
	//Scope represents a loading scope linked to its parent, root scope returns nil parent
	Scope interface {
		Parent() Scope
	}

	//Identifier names a scope in errors, logs and inventories
	Identifier interface {
		ID() string
	}

	//Registry is implemented by scopes that expose their registry entries explicitly.
	//Entities returns entries in registration order.
	Registry interface {
		Entities() []interface{}
	}

	//RLocker is implemented by scopes guarding their registry with a read lock
	RLocker interface {
		RLock()
		RUnlock()
	}
)

// ScopeID returns scope identifier
func ScopeID(scope Scope) string {
	if isNil(scope) {
		return ""
	}
	if identifier, ok := scope.(Identifier); ok {
		return identifier.ID()
	}
	value := reflect.ValueOf(scope)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return fmt.Sprintf("%T@%#x", scope, value.Pointer())
	}
	return fmt.Sprintf("%T", scope)
}

func isNil(scope Scope) bool {
	if scope == nil {
		return true
	}
	value := reflect.ValueOf(scope)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Slice:
		return value.IsNil()
	}
	return false
}
