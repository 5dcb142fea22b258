// Package value models a dynamically-typed value space and provides the
// generic operations an Underscore-style utility belt needs over it: type
// classification, deep equality, deep copy, shallow matching, and the usual
// single-pass container helpers.
//
// # The value space
//
// [Value] is a closed tagged union over eight kinds: nil, bool, number,
// string, func, handle, and the two container kinds [Seq] (ordered sequence)
// and [Map] (associative container keyed by scalar [Key]s). A switch over
// [Kind] is exhaustive; there are no open extension points in the kind space.
//
//	v := value.SeqValue(value.Int(1), value.Int(2), value.String("three"))
//	v.Kind()             // value.KindSeq
//	value.IsContainer(v) // true
//
// # Array shape is a classification, not a type
//
// A Map whose key set is exactly the contiguous numeric range 1..N is
// array-shaped. [IsArrayShaped] re-derives this structurally on every call,
// and the generic operations treat such a map and a Seq with the same
// elements as the same logical container:
//
//	m := value.MapOf(
//	    value.Entry{Key: value.IntKey(1), Val: value.Int(10)},
//	    value.Entry{Key: value.IntKey(2), Val: value.Int(20)},
//	)
//	value.Equal(m.Value(), value.SeqValue(value.Int(10), value.Int(20))) // true
//
// # Equality and copying
//
// [Equal] is deep structural equality with a reference-identity fast path, an
// optional per-container [Equaler] override via [Meta], and an identity-keyed
// cycle guard, so self-referential containers terminate. [DeepCopy] rebuilds
// containers recursively with an original→copy memo, preserving aliasing and
// cycles while sharing no mutable container with the input. [IsMatch] and
// [Matcher] provide the shallow partial-match predicate.
//
// # Errors
//
// Operations with a kind requirement return sentinel errors
// ([ErrNotContainer], [ErrTypeMismatch], …) comparable with [errors.Is]
// rather than silently coercing. The numeric predicates in particular reject
// non-numbers by contract.
//
// # Concurrency
//
// All operations are pure and safe for concurrent use on disjoint inputs.
// Containers are plain mutable structures: concurrent mutation during a
// traversal is undefined behavior, exactly as with Go's built-in maps.
package value
