package value

import (
	"fmt"
	"strings"
)

// Container-oriented helpers over dynamic values.
//
// Every function in this file requires a container argument and returns
// [ErrNotContainer] (or [ErrNotSequence] where order matters) for scalars —
// misuse surfaces as a typed error, never as silent misbehavior.
//
// Iteration visits a [Seq] in index order and a [Map] in the package's total
// key order, so traversal is deterministic for both container kinds.

// Size returns the number of entries in a container.
func Size(v Value) (int, error) {
	switch v.kind {
	case KindSeq:
		return v.seq.Len(), nil
	case KindMap:
		return v.mp.Len(), nil
	}
	return 0, notContainer(v, "Size")
}

// At returns the element at the 1-based position i of a sequence (or an
// array-shaped map). Returns [ErrIndexOutOfRange] when i is outside 1..Len().
func At(v Value, i int) (Value, error) {
	s, err := ToSeq(v)
	if err != nil {
		return Nil(), err
	}
	if i < 1 || i > s.Len() {
		return Nil(), fmt.Errorf("%w: index %d of %d", ErrIndexOutOfRange, i, s.Len())
	}
	return s.items[i-1], nil
}

// Has reports whether the container has an entry under k.
// Sequence elements answer to the numeric keys 1..Len().
func Has(v Value, k Key) (bool, error) {
	if !IsContainer(v) {
		return false, notContainer(v, "Has")
	}
	_, ok := getKey(v, k)
	return ok, nil
}

// Keys returns the container's keys in iteration order.
func Keys(v Value) ([]Key, error) {
	switch v.kind {
	case KindSeq:
		out := make([]Key, v.seq.Len())
		for i := range out {
			out[i] = IntKey(i + 1)
		}
		return out, nil
	case KindMap:
		return v.mp.SortedKeys(), nil
	}
	return nil, notContainer(v, "Keys")
}

// Values returns the container's values in iteration order.
func Values(v Value) ([]Value, error) {
	keys, err := Keys(v)
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(keys))
	for i, k := range keys {
		out[i], _ = getKey(v, k)
	}
	return out, nil
}

// Each calls fn(key, value) for every entry in iteration order.
// Iteration stops early when fn returns false.
func Each(v Value, fn func(k Key, val Value) bool) error {
	keys, err := Keys(v)
	if err != nil {
		return err
	}
	for _, k := range keys {
		val, _ := getKey(v, k)
		if !fn(k, val) {
			return nil
		}
	}
	return nil
}

// MapValues transforms every entry with fn and returns a new container of the
// same kind: a seq maps to a seq in order, a map to a map under the same keys.
func MapValues(v Value, fn func(k Key, val Value) Value) (Value, error) {
	switch v.kind {
	case KindSeq:
		out := make([]Value, v.seq.Len())
		for i, item := range v.seq.items {
			out[i] = fn(IntKey(i+1), item)
		}
		return (&Seq{items: out}).Value(), nil
	case KindMap:
		out := &Map{entries: make(map[Key]Value, v.mp.Len())}
		for k, item := range v.mp.entries {
			out.entries[k] = fn(k, item)
		}
		return out.Value(), nil
	}
	return Nil(), notContainer(v, "MapValues")
}

// Filter returns a new container holding only the entries for which fn
// returns true. A seq compacts (surviving elements are renumbered); a map
// keeps its keys.
func Filter(v Value, fn func(k Key, val Value) bool) (Value, error) {
	switch v.kind {
	case KindSeq:
		out := make([]Value, 0, v.seq.Len())
		for i, item := range v.seq.items {
			if fn(IntKey(i+1), item) {
				out = append(out, item)
			}
		}
		return (&Seq{items: out}).Value(), nil
	case KindMap:
		out := &Map{entries: make(map[Key]Value)}
		for k, item := range v.mp.entries {
			if fn(k, item) {
				out.entries[k] = item
			}
		}
		return out.Value(), nil
	}
	return Nil(), notContainer(v, "Filter")
}

// Reject returns a new container with the entries for which fn returns true
// removed. It is the complement of [Filter].
func Reject(v Value, fn func(k Key, val Value) bool) (Value, error) {
	return Filter(v, func(k Key, val Value) bool { return !fn(k, val) })
}

// Reduce folds the container into a single value, visiting entries in
// iteration order.
func Reduce(v Value, initial Value, fn func(acc Value, k Key, val Value) Value) (Value, error) {
	acc := initial
	err := Each(v, func(k Key, val Value) bool {
		acc = fn(acc, k, val)
		return true
	})
	if err != nil {
		return Nil(), err
	}
	return acc, nil
}

// Find returns the first entry value for which fn returns true.
// The second result is false when no entry matches.
func Find(v Value, fn func(k Key, val Value) bool) (Value, bool, error) {
	var found Value
	matched := false
	err := Each(v, func(k Key, val Value) bool {
		if fn(k, val) {
			found, matched = val, true
			return false
		}
		return true
	})
	if err != nil {
		return Nil(), false, err
	}
	if !matched {
		return Nil(), false, nil
	}
	return found, true, nil
}

// Every reports whether fn returns true for all entries.
// Vacuously true for an empty container.
func Every(v Value, fn func(k Key, val Value) bool) (bool, error) {
	all := true
	err := Each(v, func(k Key, val Value) bool {
		if !fn(k, val) {
			all = false
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}
	return all, nil
}

// Some reports whether fn returns true for at least one entry.
func Some(v Value, fn func(k Key, val Value) bool) (bool, error) {
	_, ok, err := Find(v, fn)
	return ok, err
}

// Contains reports whether any entry value is deep-equal to target.
func Contains(v Value, target Value) (bool, error) {
	return Some(v, func(_ Key, val Value) bool { return Equal(val, target) })
}

// Join concatenates the elements of a sequence into a string separated by
// sep. Elements must be scalars (nil, bool, number, or string); a container,
// func, or handle element returns [ErrTypeMismatch].
func Join(v Value, sep string) (string, error) {
	s, err := ToSeq(v)
	if err != nil {
		return "", err
	}
	parts := make([]string, s.Len())
	for i, item := range s.items {
		switch item.kind {
		case KindNil, KindBool, KindNumber, KindString:
			parts[i] = item.String()
		default:
			return "", fmt.Errorf("%w: Join requires scalar elements, got %s at index %d",
				ErrTypeMismatch, item.kind, i)
		}
	}
	return strings.Join(parts, sep), nil
}

// Reverse reverses a string (by rune) or a sequence.
// Any other value returns [ErrNotSequence].
func Reverse(v Value) (Value, error) {
	if v.kind == KindString {
		runes := []rune(v.str)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return String(string(runes)), nil
	}
	s, err := ToSeq(v)
	if err != nil {
		return Nil(), err
	}
	n := s.Len()
	out := make([]Value, n)
	for i, item := range s.items {
		out[n-1-i] = item
	}
	return (&Seq{items: out}).Value(), nil
}

// Flatten recursively flattens nested sequences (seqs and array-shaped maps)
// into a single flat sequence. Non-sequence elements are kept as-is.
// Behavior on self-referential sequences is undefined.
func Flatten(v Value) (Value, error) {
	if _, err := ToSeq(v); err != nil {
		return Nil(), err
	}
	out := make([]Value, 0)
	var walk func(v Value)
	walk = func(v Value) {
		if IsContainer(v) && IsArrayShaped(v) {
			vals, _ := Values(v)
			for _, item := range vals {
				walk(item)
			}
			return
		}
		out = append(out, v)
	}
	walk(v)
	return (&Seq{items: out}).Value(), nil
}

// Extend copies every entry of each src into dst, left to right, and returns
// dst. Matching keys are overwritten; the copy is shallow. Nil sources are
// skipped.
func Extend(dst *Map, srcs ...*Map) *Map {
	for _, src := range srcs {
		if src == nil {
			continue
		}
		for k, val := range src.entries {
			dst.entries[k] = val
		}
	}
	return dst
}

// Pick returns a new map holding only the container's entries under the
// given keys. Absent keys are skipped.
func Pick(v Value, keys ...Key) (Value, error) {
	if !IsContainer(v) {
		return Nil(), notContainer(v, "Pick")
	}
	out := &Map{entries: make(map[Key]Value, len(keys))}
	for _, k := range keys {
		if val, ok := getKey(v, k); ok {
			out.entries[k] = val
		}
	}
	return out.Value(), nil
}

// Omit returns a new map holding the container's entries except those under
// the given keys.
func Omit(v Value, keys ...Key) (Value, error) {
	drop := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	return Filter(v, func(k Key, _ Value) bool {
		_, skip := drop[k]
		return !skip
	})
}

// Invert returns a new map exchanging keys and values. Every value must be a
// keyable scalar, otherwise [ErrInvalidKey] is returned. Duplicate values
// collapse to a single entry.
func Invert(v Value) (Value, error) {
	if !IsContainer(v) {
		return Nil(), notContainer(v, "Invert")
	}
	keys, _ := Keys(v)
	out := &Map{entries: make(map[Key]Value, len(keys))}
	for _, k := range keys {
		val, _ := getKey(v, k)
		nk, err := KeyOf(val)
		if err != nil {
			return Nil(), err
		}
		out.entries[nk] = k.Value()
	}
	return out.Value(), nil
}

// Range returns the sequence start, start+step, … up to but excluding stop.
// A zero step returns [ErrInvalidArgument]; a step pointing away from stop
// yields an empty sequence.
func Range(start, stop, step float64) (*Seq, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: Range step must be non-zero", ErrInvalidArgument)
	}
	out := make([]Value, 0)
	if step > 0 {
		for n := start; n < stop; n += step {
			out = append(out, Number(n))
		}
	} else {
		for n := start; n > stop; n += step {
			out = append(out, Number(n))
		}
	}
	return &Seq{items: out}, nil
}

// ToSeq materialises a sequence view of v: a seq is copied, an array-shaped
// map is read out element by element at keys 1..N. Any other value returns
// [ErrNotSequence].
func ToSeq(v Value) (*Seq, error) {
	switch v.kind {
	case KindSeq:
		return SeqFrom(v.seq.items), nil
	case KindMap:
		if !IsArrayShaped(v) {
			return nil, fmt.Errorf("%w: map has non-contiguous keys", ErrNotSequence)
		}
		out := make([]Value, v.mp.Len())
		for i := range out {
			out[i], _ = v.mp.Get(IntKey(i + 1))
		}
		return &Seq{items: out}, nil
	}
	return nil, fmt.Errorf("%w: got %s", ErrNotSequence, v.kind)
}

func notContainer(v Value, op string) error {
	return fmt.Errorf("%w: %s requires a container, got %s", ErrNotContainer, op, v.kind)
}
