package fn

import "sync"

// Call-count limiters. The returned closures carry internal state and are
// safe for concurrent use; the locking mirrors the package's other shared
// state (see [Memoize]).

// Once returns a function that invokes f on the first call only.
// Subsequent calls return the first result without calling f again.
func Once[T any](f func() T) func() T {
	var (
		once   sync.Once
		result T
	)
	return func() T {
		once.Do(func() { result = f() })
		return result
	}
}

// Before returns a function that invokes f for the first n calls.
// From call n+1 onward it returns the result of the last real invocation.
// With n <= 0, f is never invoked and the zero value is returned.
func Before[T any](n int, f func() T) func() T {
	var (
		mu    sync.Mutex
		calls int
		last  T
	)
	return func() T {
		mu.Lock()
		defer mu.Unlock()
		if calls < n {
			calls++
			last = f()
		}
		return last
	}
}

// After returns a function that starts invoking f on the nth call.
// Earlier calls return the zero value and false; once the threshold is
// reached every call invokes f and returns its result and true.
func After[T any](n int, f func() T) func() (T, bool) {
	var (
		mu    sync.Mutex
		calls int
	)
	return func() (T, bool) {
		mu.Lock()
		calls++
		ready := calls >= n
		mu.Unlock()
		if !ready {
			var zero T
			return zero, false
		}
		return f(), true
	}
}
