package tags

import (
	"fmt"
	"reflect"
)

// TagName defines struct tag used to annotate scope internals
const TagName = "scope"

const (
	//RegistryDirective marks a field holding scope registry entries
	RegistryDirective = "registry"
	//IgnoreDirective excludes a field from registry name matching
	IgnoreDirective = "-"
	//NameDirective overrides field name used by registry name matching
	NameDirective = "name"
)

// Tag represents parsed scope tag
type Tag struct {
	Registry bool
	Ignore   bool
	Name     string
}

// IsDefined returns true if tag carries any directive
func (t *Tag) IsDefined() bool {
	return t != nil && (t.Registry || t.Ignore || t.Name != "")
}

// Parse parses scope tag of supplied struct tag
func Parse(tag reflect.StructTag) (*Tag, error) {
	literal, ok := tag.Lookup(TagName)
	if !ok {
		return &Tag{}, nil
	}
	return ParseValues(Values(literal))
}

// ParseValues parses scope tag literal
func ParseValues(values Values) (*Tag, error) {
	ret := &Tag{}
	err := values.MatchPairs(func(key, value string) error {
		switch key {
		case RegistryDirective:
			ret.Registry = true
		case IgnoreDirective:
			ret.Ignore = true
		case NameDirective:
			ret.Name = value
		default:
			return fmt.Errorf("unsupported %v tag directive: %q", TagName, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}
