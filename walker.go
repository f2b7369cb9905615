package scopology

import (
	"fmt"
	"go.uber.org/zap"
	"reflect"
)

// EachScope visits start scope and then each successive parent up to and including the root scope.
// A nil start scope visits nothing. The callback returning false stops the traversal, returned errors
// are passed through unchanged.
//
// The scope chain is expected to be finite and acyclic; without WithMaxDepth or WithCycleCheck
// a cyclic chain is traversed forever.
func EachScope(start Scope, fn func(depth int, scope Scope) (bool, error), opts ...Option) error {
	return eachScope(start, fn, newOptions(opts))
}

// Chain returns scopes from start to the root
func Chain(start Scope, opts ...Option) ([]Scope, error) {
	var result []Scope
	err := EachScope(start, func(depth int, scope Scope) (bool, error) {
		result = append(result, scope)
		return true, nil
	}, opts...)
	return result, err
}

func eachScope(start Scope, fn func(depth int, scope Scope) (bool, error), options *options) error {
	var visited map[scopeIdentity]bool
	if options.cycleCheck {
		visited = map[scopeIdentity]bool{}
	}
	depth := 0
	for scope := start; !isNil(scope); scope = scope.Parent() {
		if options.maxDepth > 0 && depth >= options.maxDepth {
			return fmt.Errorf("%w: exceeded %v scopes at %v", ErrChainTooDeep, options.maxDepth, ScopeID(scope))
		}
		if visited != nil {
			if identity, ok := identityOf(scope); ok {
				if visited[identity] {
					return fmt.Errorf("%w: %v revisited at depth %v", ErrCyclicChain, ScopeID(scope), depth)
				}
				visited[identity] = true
			}
		}
		if ce := options.logger.Check(zap.DebugLevel, "visiting scope"); ce != nil {
			ce.Write(zap.String("scope", ScopeID(scope)), zap.Int("depth", depth))
		}
		toContinue, err := fn(depth, scope)
		if err != nil {
			return err
		}
		if !toContinue {
			return nil
		}
		depth++
	}
	return nil
}

// scopeIdentity identifies pointer scopes, value scopes cannot link back to themselves
type scopeIdentity struct {
	rType reflect.Type
	ptr   uintptr
}

func identityOf(scope Scope) (scopeIdentity, bool) {
	value := reflect.ValueOf(scope)
	if value.Kind() != reflect.Ptr {
		return scopeIdentity{}, false
	}
	return scopeIdentity{rType: value.Type(), ptr: value.Pointer()}, true
}
