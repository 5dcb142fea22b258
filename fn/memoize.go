package fn

import "sync"

// Memoize returns a caching wrapper around f.
//
// The first call for a given key invokes f and stores the result; later
// calls with the same key return the cached value. The cache grows without
// bound and is never evicted.
//
// The wrapper is safe for concurrent use. Concurrent first calls for the
// same key may each invoke f; one of the results wins the cache slot.
//
//	fib := fn.Memoize(slowFib)
//	fib(40) // computed
//	fib(40) // cached
func Memoize[K comparable, V any](f func(K) V) func(K) V {
	var (
		mu    sync.RWMutex
		cache = make(map[K]V)
	)
	return func(k K) V {
		mu.RLock()
		v, ok := cache[k]
		mu.RUnlock()
		if ok {
			return v
		}
		v = f(k)
		mu.Lock()
		cache[k] = v
		mu.Unlock()
		return v
	}
}
