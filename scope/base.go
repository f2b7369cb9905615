package scope

import (
	"github.com/viant/scopology"
	"sync"
)

// Base represents a loading scope with a private registry of resolved entities
type Base struct {
	id       string
	parent   scopology.Scope
	mux      sync.RWMutex
	entities []interface{} `scope:"registry"`
}

// Init initialises embedded base scope
func (b *Base) Init(id string, parent scopology.Scope) {
	b.id = id
	b.parent = parent
}

// ID returns scope id
func (b *Base) ID() string {
	return b.id
}

// Parent returns parent scope or nil for root scope
func (b *Base) Parent() scopology.Scope {
	return b.parent
}

// Register appends entities to the scope registry
func (b *Base) Register(entities ...interface{}) {
	b.mux.Lock()
	b.entities = append(b.entities, entities...)
	b.mux.Unlock()
}

// Len returns number of registered entities
func (b *Base) Len() int {
	b.mux.RLock()
	defer b.mux.RUnlock()
	return len(b.entities)
}

// RLock locks registry for reading
func (b *Base) RLock() {
	b.mux.RLock()
}

// RUnlock releases registry read lock
func (b *Base) RUnlock() {
	b.mux.RUnlock()
}

// New creates a base scope
func New(id string, parent scopology.Scope) *Base {
	ret := &Base{}
	ret.Init(id, parent)
	return ret
}
