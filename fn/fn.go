package fn

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

// Comp is left-to-right typed composition: Comp(f, g)(x) == g(f(x)).
// Use Comp when the intermediate type differs from input and output;
// use [Pipe] or [Compose] for same-type chains of any length.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Compose chains same-type functions right to left, the mathematical
// convention: Compose(f, g, h)(x) == f(g(h(x))).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(t T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			t = fns[i](t)
		}
		return t
	}
}

// Pipe chains same-type functions left to right:
// Pipe(f, g, h)(x) == h(g(f(x))).
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(t T) T {
		for _, f := range fns {
			t = f(t)
		}
		return t
	}
}

// Identity returns its argument unchanged. The left and right identity of
// [Comp].
func Identity[T any](t T) T { return t }

// Const returns a function that ignores its argument and always returns a.
func Const[B, A any](a A) func(B) A {
	return func(B) A { return a }
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates & arguments
// ─────────────────────────────────────────────────────────────────────────────

// Negate returns the complement of a predicate.
func Negate[T any](pred func(T) bool) func(T) bool {
	return func(t T) bool { return !pred(t) }
}

// Partial binds the first argument of a two-argument function.
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// Partial2 binds the first two arguments of a three-argument function.
func Partial2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R { return f(a, b, c) }
}

// Flip swaps the argument order of a two-argument function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R { return f(a, b) }
}

// Wrap passes f to wrapper along with the eventual argument, letting the
// wrapper run code before and after f — or skip calling it altogether.
//
//	greet := fn.Wrap(hello, func(f func(string) string, name string) string {
//	    return "before " + f(name) + " after"
//	})
func Wrap[T, R any](f func(T) R, wrapper func(f func(T) R, arg T) R) func(T) R {
	return func(t T) R { return wrapper(f, t) }
}

// Times calls f with the indices 0..n-1 and collects the results.
// Returns an empty slice for n <= 0.
func Times[T any](n int, f func(i int) T) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = f(i)
	}
	return out
}
