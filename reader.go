package scopology

import (
	"fmt"
	"github.com/viant/scopology/visitor"
	"go.uber.org/zap"
	"reflect"
)

// ReadRegistry returns a one-shot sequence over scope registry entries in registration order.
//
// Scopes implementing Registry are read through Entities. Otherwise the registry storage is located
// on the scope struct or its embedded structs and read directly, regardless of field visibility,
// once the configured AccessPolicy permits it.
// Entries are copied at call time, under the scope read lock when the scope implements RLocker,
// so later registrations are not observed by the returned sequence.
func ReadRegistry(scope Scope, opts ...Option) (visitor.Visitor[int, interface{}], error) {
	return readRegistry(scope, 0, newOptions(opts))
}

func readRegistry(scope Scope, depth int, options *options) (visitor.Visitor[int, interface{}], error) {
	entities, err := snapshotRegistry(scope, depth, options)
	if err != nil {
		return nil, err
	}
	return visitor.Once(visitor.SliceVisitorOf(entities)), nil
}

func snapshotRegistry(scope Scope, depth int, options *options) ([]interface{}, error) {
	if isNil(scope) {
		return nil, newError(KindStructureMismatch, scope, depth, "", fmt.Errorf("scope was nil"))
	}
	if registry, ok := scope.(Registry); ok {
		entities, err := visitor.Copy(registry.Entities())
		if err != nil {
			return nil, newError(KindStructureMismatch, scope, depth, "", err)
		}
		logRegistryRead(options, scope, "Entities", len(entities))
		return entities, nil
	}
	rType := reflect.TypeOf(scope)
	structType := rType
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, newError(KindStructureMismatch, scope, depth, "", fmt.Errorf("unsupported scope type: %v", rType.String()))
	}
	field, err := lookupRegistryField(structType, options.registryNames)
	if err != nil {
		return nil, newError(KindStructureMismatch, scope, depth, "", err)
	}
	if options.policy != nil {
		if err = options.policy(field.owner, field.structField); err != nil {
			return nil, newError(KindAccessDenied, scope, depth, field.path, err)
		}
	}
	if locker, ok := scope.(RLocker); ok {
		locker.RLock()
		defer locker.RUnlock()
	}
	entities, err := field.read(scopePointer(scope))
	if err != nil {
		return nil, newError(KindStructureMismatch, scope, depth, field.path, err)
	}
	logRegistryRead(options, scope, field.path, len(entities))
	return entities, nil
}

func logRegistryRead(options *options, scope Scope, source string, count int) {
	if ce := options.logger.Check(zap.DebugLevel, "registry read"); ce != nil {
		ce.Write(zap.String("scope", ScopeID(scope)), zap.String("source", source), zap.Int("entities", count))
	}
}
