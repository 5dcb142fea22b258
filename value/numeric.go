package value

import (
	"fmt"
	"math"
)

// Numeric predicates.
//
// All four predicates require a number and return [ErrTypeMismatch] for any
// other kind — a deliberate contract choice in place of silent coercion.
//
// NaN is neither finite nor infinite here: [IsFinite] is false for NaN and
// both infinities, while [IsInfinite] is true strictly for ±Inf. This keeps
// the two predicates aligned with IEEE-754 classification rather than making
// one the complement of the other.

// IsFinite reports whether v is a number other than NaN and ±Inf.
func IsFinite(v Value) (bool, error) {
	n, err := requireNumber(v, "IsFinite")
	if err != nil {
		return false, err
	}
	return !math.IsInf(n, 0) && !math.IsNaN(n), nil
}

// IsInfinite reports whether v is +Inf or -Inf.
func IsInfinite(v Value) (bool, error) {
	n, err := requireNumber(v, "IsInfinite")
	if err != nil {
		return false, err
	}
	return math.IsInf(n, 0), nil
}

// IsNaN reports whether v is NaN (the only value not equal to itself).
func IsNaN(v Value) (bool, error) {
	n, err := requireNumber(v, "IsNaN")
	if err != nil {
		return false, err
	}
	return n != n, nil
}

// IsInteger reports whether v is a whole number: v modulo 1 equals 0.
// Negative whole numbers are integers; NaN and ±Inf are not.
func IsInteger(v Value) (bool, error) {
	n, err := requireNumber(v, "IsInteger")
	if err != nil {
		return false, err
	}
	return math.Mod(n, 1) == 0, nil
}

func requireNumber(v Value, op string) (float64, error) {
	if v.kind != KindNumber {
		return 0, fmt.Errorf("%w: %s requires a number, got %s", ErrTypeMismatch, op, v.kind)
	}
	return v.num, nil
}
