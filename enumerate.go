package scopology

import (
	"context"
	"go.uber.org/zap"
)

// Entry represents a registry entity with its position in the scope chain
type Entry struct {
	Scope   Scope
	ScopeID string
	//Depth is scope distance from the start scope
	Depth int
	//Index is entity position within the scope registry
	Index  int
	Entity interface{}
}

// Enumerate visits registry entities of the scope chain starting at the active scope carried by ctx.
// A context without an active scope visits nothing.
func Enumerate(ctx context.Context, fn func(entity interface{}) error, opts ...Option) error {
	return EnumerateFrom(FromContext(ctx), fn, opts...)
}

// EnumerateFrom visits registry entities of every scope from start to the root.
// Entities are visited in registry order within a scope, scopes from start outward.
// Errors returned by fn are returned unchanged; registry read failures abort the enumeration
// after entities of already visited scopes were delivered.
func EnumerateFrom(start Scope, fn func(entity interface{}) error, opts ...Option) error {
	return EnumerateEntries(start, func(entry *Entry) (bool, error) {
		if err := fn(entry.Entity); err != nil {
			return false, err
		}
		return true, nil
	}, opts...)
}

// EnumerateEntries visits registry entries of every scope from start to the root, fn returning false stops the enumeration
func EnumerateEntries(start Scope, fn func(entry *Entry) (bool, error), opts ...Option) error {
	options := newOptions(opts)
	stopped := false
	err := eachScope(start, func(depth int, scope Scope) (bool, error) {
		visit, err := readRegistry(scope, depth, options)
		if err != nil {
			return false, err
		}
		scopeID := ScopeID(scope)
		err = visit(func(index int, entity interface{}) (bool, error) {
			toContinue, err := fn(&Entry{Scope: scope, ScopeID: scopeID, Depth: depth, Index: index, Entity: entity})
			if !toContinue {
				stopped = true
			}
			return toContinue, err
		})
		return !stopped, err
	}, options)
	if err != nil {
		if ce := options.logger.Check(zap.DebugLevel, "enumeration failed"); ce != nil {
			ce.Write(zap.Error(err))
		}
	}
	return err
}
