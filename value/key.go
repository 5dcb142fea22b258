package value

import (
	"fmt"
	"math"
)

// Key is a scalar usable as a [Map] key: a boolean, a number, or a string.
//
// Key is a comparable struct, so two Keys built from equal scalars are equal
// and address the same Map slot. NaN is rejected as a key because it is not
// equal to itself.
type Key struct {
	kind Kind
	b    bool
	num  float64
	str  string
}

// StringKey returns the key for a string.
func StringKey(s string) Key { return Key{kind: KindString, str: s} }

// BoolKey returns the key for a boolean.
func BoolKey(b bool) Key { return Key{kind: KindBool, b: b} }

// IntKey returns the key for an integer index. Sequence positions use keys
// 1..N.
func IntKey(i int) Key { return Key{kind: KindNumber, num: float64(i)} }

// NumberKey returns the key for a number.
// Returns [ErrInvalidKey] for NaN; negative zero is normalised to zero so
// that equal numbers address the same slot.
func NumberKey(n float64) (Key, error) {
	if math.IsNaN(n) {
		return Key{}, fmt.Errorf("%w: NaN cannot be used as a key", ErrInvalidKey)
	}
	if n == 0 {
		n = 0 // folds -0 into +0
	}
	return Key{kind: KindNumber, num: n}, nil
}

// KeyOf converts a scalar Value into a Key.
// Returns [ErrInvalidKey] when v is nil, NaN, a container, a func, or a
// handle.
func KeyOf(v Value) (Key, error) {
	switch v.kind {
	case KindBool:
		return BoolKey(v.b), nil
	case KindNumber:
		return NumberKey(v.num)
	case KindString:
		return StringKey(v.str), nil
	}
	return Key{}, fmt.Errorf("%w: %s values cannot be used as keys", ErrInvalidKey, v.kind)
}

// Kind returns the kind of the key (KindBool, KindNumber, or KindString).
func (k Key) Kind() Kind { return k.kind }

// Value lifts the key back into the dynamic value space.
func (k Key) Value() Value {
	switch k.kind {
	case KindBool:
		return Bool(k.b)
	case KindNumber:
		return Number(k.num)
	case KindString:
		return String(k.str)
	}
	return Nil()
}

// less is a total order over keys used for deterministic traversal:
// bools before numbers before strings, then by payload.
func (k Key) less(other Key) bool {
	if k.kind != other.kind {
		return k.kind < other.kind
	}
	switch k.kind {
	case KindBool:
		return !k.b && other.b
	case KindNumber:
		return k.num < other.num
	case KindString:
		return k.str < other.str
	}
	return false
}
