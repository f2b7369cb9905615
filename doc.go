// Package scopology enumerates entities registered with a chain of loading scopes.
//
// Enumeration starts at the active scope and follows Parent links to the root scope, visiting
// each scope registry in registration order. Registries are read through the Registry capability
// when a scope implements it, otherwise the registry storage declared by the scope struct, or by
// one of its embedded structs, is read directly, subject to the configured AccessPolicy.
//
// The package never mutates scopes. Registries are copied under the scope read lock, when available,
// before their entities are visited.
package scopology
