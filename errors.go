package scopology

import (
	"errors"
	"fmt"
	"github.com/viant/scopology/visitor"
	"reflect"
	"strings"
)

// Kind represents registry read failure kind
type Kind int

const (
	//KindAccessDenied reports registry read refused by access policy
	KindAccessDenied Kind = iota + 1
	//KindStructureMismatch reports scope without recognizable registry storage
	KindStructureMismatch
)

var (
	//ErrAccessDenied matches errors of KindAccessDenied
	ErrAccessDenied = errors.New("introspection denied")
	//ErrStructureMismatch matches errors of KindStructureMismatch
	ErrStructureMismatch = errors.New("registry not found")
	//ErrChainTooDeep is returned when scope chain exceeds configured max depth
	ErrChainTooDeep = errors.New("scope chain too deep")
	//ErrCyclicChain is returned when cycle check detects a revisited scope
	ErrCyclicChain = errors.New("cyclic scope chain")
	//ErrConsumed is returned when a registry sequence is visited again
	ErrConsumed = visitor.ErrConsumed
)

// String returns kind name
func (k Kind) String() string {
	switch k {
	case KindAccessDenied:
		return "access denied"
	case KindStructureMismatch:
		return "structure mismatch"
	}
	return "unknown"
}

// Error represents registry read error
type Error struct {
	Kind    Kind
	ScopeID string
	Depth   int
	Type    reflect.Type
	Field   string
	Err     error
}

// Error returns error message
func (e *Error) Error() string {
	builder := strings.Builder{}
	builder.WriteString(e.Kind.String())
	builder.WriteString(": scope ")
	builder.WriteString(e.ScopeID)
	builder.WriteString(fmt.Sprintf(" (depth: %v", e.Depth))
	if e.Type != nil {
		builder.WriteString(", type: ")
		builder.WriteString(e.Type.String())
	}
	if e.Field != "" {
		builder.WriteString(", field: ")
		builder.WriteString(e.Field)
	}
	builder.WriteString(")")
	if e.Err != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Err.Error())
	}
	return builder.String()
}

// Unwrap returns underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches kind sentinel errors
func (e *Error) Is(target error) bool {
	switch target {
	case ErrAccessDenied:
		return e.Kind == KindAccessDenied
	case ErrStructureMismatch:
		return e.Kind == KindStructureMismatch
	}
	return false
}

func newError(kind Kind, scope Scope, depth int, field string, err error) *Error {
	ret := &Error{Kind: kind, ScopeID: ScopeID(scope), Depth: depth, Field: field, Err: err}
	if !isNil(scope) {
		ret.Type = reflect.TypeOf(scope)
	}
	return ret
}
