package main

import (
	"fmt"
	"github.com/viant/scopology"
	"github.com/viant/scopology/scope"
	"gopkg.in/yaml.v3"
	"os"
)

// hierarchy describes a scope with its registry entities and parent
type hierarchy struct {
	ID       string        `yaml:"id"`
	Entities []interface{} `yaml:"entities"`
	Parent   *hierarchy    `yaml:"parent"`
}

func loadHierarchy(location string) (*hierarchy, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, err
	}
	return parseHierarchy(data)
}

func parseHierarchy(data []byte) (*hierarchy, error) {
	ret := &hierarchy{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("invalid hierarchy: %w", err)
	}
	return ret, nil
}

// build materializes scope chain, returns start scope
func (h *hierarchy) build() (scopology.Scope, error) {
	if h == nil {
		return nil, nil
	}
	var parent scopology.Scope
	if h.Parent != nil {
		var err error
		if parent, err = h.Parent.build(); err != nil {
			return nil, err
		}
	}
	if h.ID == "" {
		return nil, fmt.Errorf("scope id was empty")
	}
	ret := scope.New(h.ID, parent)
	ret.Register(h.Entities...)
	return ret, nil
}
