package scopology

import (
	"fmt"
	"reflect"
)

// AccessPolicy decides whether registry field declared by owner struct can be read
type AccessPolicy func(owner reflect.Type, field reflect.StructField) error

// DenyAll refuses every privileged registry read
func DenyAll(owner reflect.Type, field reflect.StructField) error {
	return fmt.Errorf("privileged read of %v.%v refused", owner.String(), field.Name)
}

// ExportedOnly refuses reading unexported registry fields
func ExportedOnly(owner reflect.Type, field reflect.StructField) error {
	if field.IsExported() {
		return nil
	}
	return fmt.Errorf("unexported field %v.%v", owner.String(), field.Name)
}

// AllowTypes permits privileged reads of registries declared by supplied struct types only
func AllowTypes(types ...reflect.Type) AccessPolicy {
	allowed := make(map[reflect.Type]bool, len(types))
	for _, t := range types {
		if t = ensureStruct(t); t != nil {
			allowed[t] = true
		}
	}
	return func(owner reflect.Type, field reflect.StructField) error {
		if allowed[owner] {
			return nil
		}
		return fmt.Errorf("type %v is not allowed", owner.String())
	}
}
