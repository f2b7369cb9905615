// Package visitor offers generic callback visitors used to stream registry entries.
// It provides snapshot-backed iteration over slices and arrays, one-shot sequences,
// and a small concurrent type cache.
package visitor
