package scope

import "github.com/viant/scopology"

// Open represents a scope exposing its registry explicitly
type Open struct {
	Base
}

// Entities returns registered entities in registration order
func (o *Open) Entities() []interface{} {
	o.mux.RLock()
	defer o.mux.RUnlock()
	ret := make([]interface{}, len(o.entities))
	copy(ret, o.entities)
	return ret
}

// NewOpen creates an open scope
func NewOpen(id string, parent scopology.Scope) *Open {
	ret := &Open{}
	ret.Init(id, parent)
	return ret
}
