package visitor

import (
	"errors"
	"sync/atomic"
)

// ErrConsumed is returned when a one-shot visitor is visited again
var ErrConsumed = errors.New("visitor already consumed")

// Once wraps visitor so that it can be visited only once
func Once[K comparable, E any](visitor Visitor[K, E]) Visitor[K, E] {
	var used atomic.Bool
	return func(f func(key K, element E) (bool, error)) error {
		if !used.CompareAndSwap(false, true) {
			return ErrConsumed
		}
		return visitor(f)
	}
}
