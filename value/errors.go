package value

import "errors"

// Sentinel errors returned by value operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := value.Keys(v)
//	if errors.Is(err, value.ErrNotContainer) {
//	    // v was a scalar
//	}
var (
	// ErrTypeMismatch is returned when an operation receives a value of the
	// wrong kind, e.g. a numeric predicate applied to a string.
	ErrTypeMismatch = errors.New("value: type mismatch")

	// ErrNotContainer is returned by container-oriented operations when the
	// argument is not a seq or a map.
	ErrNotContainer = errors.New("value: not a container")

	// ErrNotSequence is returned by sequence-oriented operations when the
	// argument is neither a seq nor an array-shaped map.
	ErrNotSequence = errors.New("value: not a sequence")

	// ErrInvalidKey is returned when a value cannot serve as a map key
	// (nil, NaN, containers, funcs, and handles).
	ErrInvalidKey = errors.New("value: invalid key")

	// ErrIndexOutOfRange is returned when a sequence index is outside
	// [0, Len()-1].
	ErrIndexOutOfRange = errors.New("value: index out of range")

	// ErrInvalidArgument is returned when an argument is of the right kind
	// but outside the operation's domain, e.g. a zero step for [Range].
	ErrInvalidArgument = errors.New("value: invalid argument")
)
