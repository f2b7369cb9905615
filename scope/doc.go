// Package scope provides loading scope implementations that can be embedded by host scopes.
//
// Base keeps its registry private; it is enumerable only through the reflective registry reader.
// Open exposes its registry through the scopology.Registry capability.
package scope
