package scopology

import (
	"fmt"
	"github.com/viant/scopology/tags"
	"github.com/viant/scopology/visitor"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"reflect"
	"strings"
	"unsafe"
)

type (
	//registryField represents located registry storage with embedded struct hops leading to it
	registryField struct {
		owner       reflect.Type
		structField reflect.StructField
		field       *xunsafe.Field
		hops        []*embeddedHop
		path        string
	}

	embeddedHop struct {
		field *xunsafe.Field
		isPtr bool
	}

	registryKey struct {
		rType reflect.Type
		names string
	}

	registryResolution struct {
		field *registryField
		err   error
	}

	declaringCandidate struct {
		rType reflect.Type
		hops  []*embeddedHop
		path  []string
	}
)

var registryFields = visitor.NewSyncMap[registryKey, *registryResolution]()

func lookupRegistryField(rType reflect.Type, names []string) (*registryField, error) {
	key := registryKey{rType: rType, names: strings.Join(names, ",")}
	resolution := registryFields.GetOrCompute(key, func(key registryKey) *registryResolution {
		field, err := resolveRegistryField(key.rType, names)
		return &registryResolution{field: field, err: err}
	})
	return resolution.field, resolution.err
}

// resolveRegistryField walks rType and its embedded structs breadth-first, outermost first,
// returning the first struct declaring registry storage.
func resolveRegistryField(rType reflect.Type, names []string) (*registryField, error) {
	queue := []*declaringCandidate{{rType: rType}}
	seen := map[reflect.Type]bool{}
	for len(queue) > 0 {
		candidate := queue[0]
		queue = queue[1:]
		if seen[candidate.rType] {
			continue
		}
		seen[candidate.rType] = true
		structField, err := matchRegistryField(candidate.rType, names)
		if err != nil {
			return nil, err
		}
		if structField != nil {
			return &registryField{
				owner:       candidate.rType,
				structField: *structField,
				field:       xunsafe.NewField(*structField),
				hops:        candidate.hops,
				path:        strings.Join(append(candidate.path, structField.Name), "."),
			}, nil
		}
		for i := 0; i < candidate.rType.NumField(); i++ {
			field := candidate.rType.Field(i)
			if !field.Anonymous {
				continue
			}
			embedded := field.Type
			isPtr := embedded.Kind() == reflect.Ptr
			if isPtr {
				embedded = embedded.Elem()
			}
			if embedded.Kind() != reflect.Struct {
				continue
			}
			hops := make([]*embeddedHop, len(candidate.hops), len(candidate.hops)+1)
			copy(hops, candidate.hops)
			hops = append(hops, &embeddedHop{field: xunsafe.NewField(field), isPtr: isPtr})
			path := make([]string, len(candidate.path), len(candidate.path)+1)
			copy(path, candidate.path)
			queue = append(queue, &declaringCandidate{rType: embedded, hops: hops, path: append(path, field.Name)})
		}
	}
	return nil, fmt.Errorf("no type in %v hierarchy declares registry field %v", rType.String(), names)
}

// matchRegistryField returns a field tagged as registry, or the first slice or array field matching names in names order.
// Name matched fields of other kinds are skipped so that embedded structs can still declare the registry.
func matchRegistryField(owner reflect.Type, names []string) (*reflect.StructField, error) {
	var named []*reflect.StructField
	var fieldNames []string
	for i := 0; i < owner.NumField(); i++ {
		field := owner.Field(i)
		if field.Anonymous {
			continue
		}
		tag, err := tags.Parse(field.Tag)
		if err != nil {
			return nil, fmt.Errorf("invalid tag on %v.%v: %w", owner.String(), field.Name, err)
		}
		if tag.Registry {
			return &field, ensureRegistryKind(owner, &field)
		}
		if tag.Ignore {
			continue
		}
		name := field.Name
		if tag.Name != "" {
			name = tag.Name
		}
		named = append(named, &field)
		fieldNames = append(fieldNames, normalizeName(name))
	}
	for _, name := range names {
		name = normalizeName(name)
		for i, candidate := range fieldNames {
			if strings.EqualFold(candidate, name) && ensureRegistryKind(owner, named[i]) == nil {
				return named[i], nil
			}
		}
	}
	return nil, nil
}

func ensureRegistryKind(owner reflect.Type, field *reflect.StructField) error {
	switch field.Type.Kind() {
	case reflect.Slice, reflect.Array:
		return nil
	}
	return fmt.Errorf("registry field %v.%v has unsupported type %v", owner.String(), field.Name, field.Type.String())
}

func normalizeName(name string) string {
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, text.CaseFormatLowerCamel)
}

// read copies registry entries of scope located at ptr
func (f *registryField) read(ptr unsafe.Pointer) ([]interface{}, error) {
	for _, hop := range f.hops {
		ptr = hop.field.Pointer(ptr)
		if hop.isPtr {
			ptr = xunsafe.DerefPointer(ptr)
			if ptr == nil {
				return nil, fmt.Errorf("embedded %v was nil", hop.field.Name)
			}
		}
	}
	fieldPtr := f.field.Pointer(ptr)
	return visitor.CopyValue(reflect.NewAt(f.structField.Type, fieldPtr).Elem())
}

func scopePointer(scope Scope) unsafe.Pointer {
	rType := reflect.TypeOf(scope)
	if rType.Kind() == reflect.Ptr {
		return xunsafe.AsPointer(scope)
	}
	rPointer := reflect.New(rType)
	rPointer.Elem().Set(reflect.ValueOf(scope))
	return xunsafe.AsPointer(rPointer.Interface())
}
