package scopology

// linkedScope keeps its registry private under the default "entities" name
type linkedScope struct {
	id       string
	parent   Scope
	entities []interface{}
}

func (s *linkedScope) Parent() Scope {
	return s.parent
}

func (s *linkedScope) ID() string {
	return s.id
}

// openScope exposes registry through Registry capability
type openScope struct {
	id     string
	parent Scope
	items  []interface{}
}

func (s *openScope) Parent() Scope {
	return s.parent
}

func (s *openScope) ID() string {
	return s.id
}

func (s *openScope) Entities() []interface{} {
	return s.items
}

// opaqueScope has no recognizable registry storage
type opaqueScope struct {
	parent Scope
	index  map[string]int
}

func (s *opaqueScope) Parent() Scope {
	return s.parent
}

func newChain(registries ...[]interface{}) []*linkedScope {
	var result = make([]*linkedScope, len(registries))
	for i := len(registries) - 1; i >= 0; i-- {
		result[i] = &linkedScope{id: string(rune('A' + i)), entities: registries[i]}
		if i+1 < len(registries) {
			result[i].parent = result[i+1]
		}
	}
	return result
}

func collect(start Scope, opts ...Option) ([]interface{}, error) {
	var visited []interface{}
	err := EnumerateFrom(start, func(entity interface{}) error {
		visited = append(visited, entity)
		return nil
	}, opts...)
	return visited, err
}
